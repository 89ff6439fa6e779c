// Package parser turns free-text registration messages into typed requests.
package parser

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/scrimbot/internal/roster"
)

// ParseError is a format problem with a registration message
type ParseError string

// Error implements the error interface
func (e ParseError) Error() string {
	return string(e)
}

// Kind classifies the error as user-correctable input
func (e ParseError) Kind() roster.Kind {
	return roster.KindValidation
}

const (
	ErrEmptyMessage     ParseError = "registration message is empty"
	ErrMissingTeamName  ParseError = "message must include a 'Team Name:' line"
	ErrEmptyTeamName    ParseError = "team name cannot be empty"
	ErrMultipleTeamName ParseError = "only one 'Team Name:' line is allowed"
)

// FormatHelp is the expected shape of a registration message
const FormatHelp = "Team Name: Your Team Name\nMembers: @member1 @member2 ..."

var (
	teamNamePrefixes = []string{"team name:", "teamname:", "team:"}

	// user mentions look like <@123> or <@!123>; role mentions <@&123> are skipped
	userMentionPattern = regexp.MustCompile(`<@!?(\d+)>`)
)

// ParsedRegistration is the typed form of a registration message
type ParsedRegistration struct {
	// TeamName is the trimmed value of the team name line
	TeamName string

	// MentionedIDs holds each mentioned user once, in order of appearance
	MentionedIDs []string
}

// Parse reads a registration message. mentionedIDs are the user mentions the
// platform resolved for the message; mentions written in the raw text are
// merged in so either source is enough.
func Parse(content string, mentionedIDs []string) (*ParsedRegistration, error) {
	lines := nonEmptyLines(content)
	if len(lines) == 0 {
		return nil, ErrEmptyMessage
	}

	parsed := &ParsedRegistration{}
	foundName := false

	for _, line := range lines {
		if value, ok := cutPrefixFold(line, teamNamePrefixes); ok {
			if foundName {
				return nil, ErrMultipleTeamName
			}
			foundName = true
			parsed.TeamName = strings.TrimSpace(userMentionPattern.ReplaceAllString(value, ""))
		}
	}

	if !foundName {
		return nil, ErrMissingTeamName
	}
	if parsed.TeamName == "" {
		return nil, ErrEmptyTeamName
	}

	parsed.MentionedIDs = Mentions(content, mentionedIDs)
	return parsed, nil
}

// Mentions returns every user mentioned by a message once, in order of
// appearance, merging platform-resolved mentions with those in the raw text
func Mentions(content string, mentionedIDs []string) []string {
	return mergeMentions(mentionedIDs, ExtractMentions(content))
}

// ExtractMentions returns the user IDs mentioned in raw message text
func ExtractMentions(content string) []string {
	matches := userMentionPattern.FindAllStringSubmatch(content, -1)
	ids := make([]string, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, match[1])
	}
	return ids
}

func nonEmptyLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func cutPrefixFold(line string, prefixes []string) (string, bool) {
	lower := strings.ToLower(line)
	for _, prefix := range prefixes {
		if strings.HasPrefix(lower, prefix) {
			return line[len(prefix):], true
		}
	}
	return "", false
}

func mergeMentions(sources ...[]string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, source := range sources {
		for _, id := range source {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
