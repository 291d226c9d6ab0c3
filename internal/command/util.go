package command

import (
	"regexp"
	"strings"
)

var (
	mentionPrefix  = regexp.MustCompile(`^\s*<@[A-Z0-9]+(\|[^>]*)?>\s*`)
	escapedUser    = regexp.MustCompile(`^<@([A-Z0-9]+)(\|[^>]*)?>$`)
	escapedChannel = regexp.MustCompile(`^<#([A-Z0-9]+)(\|[^>]*)?>$`)
)

// stripMention removes the leading bot mention Slack prepends to
// app_mention event text.
func stripMention(text string) string {
	return strings.TrimSpace(mentionPrefix.ReplaceAllString(text, ""))
}

// unescapeUser extracts the user id from a Slack-escaped mention like
// <@U12345|name>; plain ids pass through.
func unescapeUser(s string) string {
	if m := escapedUser.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

// unescapeChannel extracts the channel id from a Slack-escaped reference
// like <#C12345|general>; plain ids pass through.
func unescapeChannel(s string) string {
	if m := escapedChannel.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}
