package parser

import (
	"testing"

	"github.com/KirkDiggler/scrimbot/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		mentions     []string
		wantName     string
		wantMentions []string
		wantErr      error
	}{
		{
			name:         "standard format",
			content:      "Team Name: Night Owls\nMembers: <@111> <@222>",
			wantName:     "Night Owls",
			wantMentions: []string{"111", "222"},
		},
		{
			name:         "platform mentions merged with text mentions",
			content:      "team name:  Alpha  \nmembers: <@!111> <@333>",
			mentions:     []string{"333", "444"},
			wantName:     "Alpha",
			wantMentions: []string{"333", "444", "111"},
		},
		{
			name:         "role mentions ignored",
			content:      "Team: Beta\n<@&999> <@111>",
			wantName:     "Beta",
			wantMentions: []string{"111"},
		},
		{
			name:         "solo team without mentions",
			content:      "Team Name: Lone Wolf",
			wantName:     "Lone Wolf",
			wantMentions: []string{},
		},
		{
			name:         "mention inside team name line is not part of the name",
			content:      "Team Name: Gamma <@111>",
			wantName:     "Gamma",
			wantMentions: []string{"111"},
		},
		{
			name:    "empty message",
			content: "  \n \n",
			wantErr: ErrEmptyMessage,
		},
		{
			name:    "missing team name line",
			content: "Members: <@111> <@222>",
			wantErr: ErrMissingTeamName,
		},
		{
			name:    "blank team name",
			content: "Team Name:   \nMembers: <@111>",
			wantErr: ErrEmptyTeamName,
		},
		{
			name:    "two team name lines",
			content: "Team Name: A\nTeam Name: B",
			wantErr: ErrMultipleTeamName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse(tt.content, tt.mentions)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, roster.KindValidation, roster.KindOf(err))
				assert.Nil(t, parsed)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, parsed.TeamName)
			if len(tt.wantMentions) == 0 {
				assert.Empty(t, parsed.MentionedIDs)
			} else {
				assert.Equal(t, tt.wantMentions, parsed.MentionedIDs)
			}
		})
	}
}

func TestExtractMentions(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "1"}, ExtractMentions("<@1> hi <@!2> <@1> <@&3>"))
	assert.Empty(t, ExtractMentions("no mentions here"))
}

func TestMentions(t *testing.T) {
	assert.Equal(t, []string{"9", "1", "2"}, Mentions("<@1> and <@2> <@1>", []string{"9", "1"}))
	assert.Empty(t, Mentions("nobody", nil))
}
