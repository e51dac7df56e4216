// Package discord provides a sarah.Adapter implementation for Discord.
//
// The adapter bridges go-sarah's bot framework with Discord using discordgo
// for the underlying gateway and REST integration. Message events become
// *Input, guild member join events become *MemberJoinInput, and sarah.Output
// is dispatched as Discord messages.
//
// Outputs addressed to a ChannelID are sent as-is. Outputs addressed to a
// GuildID carry an *Announcement whose channel is resolved and verified to
// belong to that guild before anything is sent.
package discord
