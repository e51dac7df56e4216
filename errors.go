package discord

import "errors"

// ErrEmptyToken indicates that no token was provided and no session was injected via WithSession.
var ErrEmptyToken = errors.New("token must be set or a session must be provided via WithSession")

// ErrNoAuthor indicates that the given message has no author.
var ErrNoAuthor = errors.New("message has no author")

// ErrNoMember indicates that the given member join event carries no member or user.
var ErrNoMember = errors.New("member event has no user")

// ErrChannelNotFound indicates that the announcement channel could not be resolved.
var ErrChannelNotFound = errors.New("channel not found")

// ErrChannelNotInGuild indicates that the announcement channel belongs to another guild.
var ErrChannelNotInGuild = errors.New("channel does not belong to guild")

// ErrUnsupportedOutput indicates that an output's destination or content cannot be posted to Discord.
var ErrUnsupportedOutput = errors.New("unsupported output")
