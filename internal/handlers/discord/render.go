package discord

import (
	"fmt"

	"github.com/KirkDiggler/scrimbot/internal/eventtime"
	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/KirkDiggler/scrimbot/internal/parser"
	"github.com/KirkDiggler/scrimbot/internal/roster"
	"github.com/KirkDiggler/scrimbot/internal/services/messaging"
	"github.com/KirkDiggler/scrimbot/internal/services/registration"
	"github.com/bwmarrin/discordgo"
)

// Modal custom IDs and input fields
const (
	ScheduleModalPrefix = "scrim_schedule_modal:"
	TeamNameModalPrefix = "scrim_team_name_modal:"

	modalFieldStartTime = "start_time"
	modalFieldDetails   = "details"
	modalFieldTeamName  = "team_name"
)

// renderRejection builds the embed explaining why a request was refused
func renderRejection(kind roster.Kind, output *messaging.GetRejectionMessageOutput) *discordgo.MessageEmbed {
	color := colorWarning
	if kind == roster.KindPlatform {
		color = colorError
	}

	embed := &discordgo.MessageEmbed{
		Title:       output.Title,
		Description: output.Message,
		Color:       color,
	}

	if output.ShowFormatHelp {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Format",
			Value: fmt.Sprintf("```\n%s\n```", parser.FormatHelp),
		})
	}

	return embed
}

// renderAccepted builds the confirmation embed for a registered team
func renderAccepted(output *messaging.GetRegistrationAcceptedMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       output.Title,
		Description: output.Message,
		Color:       colorSuccess,
	}
}

// renderTeam shows a member their team
func renderTeam(session *models.Session, team *models.Team, isCaptain bool) *discordgo.MessageEmbed {
	role := "Member"
	if isCaptain {
		role = "Captain"
	}

	return &discordgo.MessageEmbed{
		Title:       team.Name,
		Description: fmt.Sprintf("Registered for **%s**", session.TournamentName),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Captain", Value: messaging.Mention(team.CaptainID), Inline: true},
			{Name: "Your role", Value: role, Inline: true},
			{Name: "Members", Value: mentionList(team.MemberIDs)},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Session %s", session.ID),
		},
	}
}

// renderRoster shows a session's roster as an embed
func renderRoster(session *models.Session, rosterText string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       session.TournamentName,
		Description: rosterText,
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: string(session.State), Inline: true},
			{Name: "Team size", Value: fmt.Sprintf("%d", session.TeamSize), Inline: true},
			{Name: "Channel", Value: messaging.ChannelMention(session.ChannelID), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Session %s", session.ID),
		},
	}

	if session.ScheduledTime != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Starts",
			Value: fmt.Sprintf("<t:%d:F>", session.ScheduledTime.Unix()),
		})
	}

	return embed
}

// renderTeamNamePrompt asks a captain to name a team whose members were mentioned
func renderTeamNamePrompt(sessionID string, output *messaging.GetTeamNamePromptMessageOutput) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title:       output.Title,
		Description: output.Message,
		Color:       colorInfo,
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    output.ButtonLabel,
					Style:    discordgo.PrimaryButton,
					CustomID: registration.TeamNameButtonPrefix + sessionID,
				},
			},
		},
	}

	return embed, components
}

// teamNameModal collects the team name for a held member list
func teamNameModal(sessionID string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: TeamNameModalPrefix + sessionID,
		Title:    "Name your team",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    modalFieldTeamName,
						Label:       "Team name",
						Style:       discordgo.TextInputShort,
						Placeholder: "Night Owls",
						Required:    true,
						MinLength:   1,
						MaxLength:   roster.MaxTeamNameLength,
					},
				},
			},
		},
	}
}

// scheduleModal asks the organizer for the event start time
func scheduleModal(session *models.Session) *discordgo.InteractionResponseData {
	title := fmt.Sprintf("Schedule %s", session.TournamentName)
	if len([]rune(title)) > 45 {
		title = string([]rune(title)[:45])
	}

	startTime := ""
	if session.ScheduledTime != nil {
		startTime = eventtime.NewParser(eventtime.DefaultOffset).Format(*session.ScheduledTime)
	}

	return &discordgo.InteractionResponseData{
		CustomID: ScheduleModalPrefix + session.ID,
		Title:    title,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    modalFieldStartTime,
						Label:       fmt.Sprintf("Start time %s", eventtime.ExpectedFormat),
						Style:       discordgo.TextInputShort,
						Placeholder: "2025-07-20 18:30",
						Value:       startTime,
						Required:    true,
						MinLength:   10,
						MaxLength:   19,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  modalFieldDetails,
						Label:     "Details (map, lobby, rules)",
						Style:     discordgo.TextInputParagraph,
						Value:     session.ScheduledDetails,
						Required:  false,
						MaxLength: 1000,
					},
				},
			},
		},
	}
}

// modalValues collects text input values by custom ID
func modalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}

func mentionList(ids []string) string {
	if len(ids) == 0 {
		return "none"
	}
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += " "
		}
		out += messaging.Mention(id)
	}
	return out
}
