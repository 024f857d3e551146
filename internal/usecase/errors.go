package usecase

import "errors"

var (
	ErrInvalidReaction   = errors.New("reaction must be 'like' or 'dislike'")
	ErrReactionInFlight  = errors.New("a reaction change for this post is already in progress")
	ErrTooManyInterests  = errors.New("too many interests selected")
	ErrNoInterests       = errors.New("select at least one interest")
	ErrEmptyComment      = errors.New("comment content cannot be empty")
	ErrInvalidPollAnswer = errors.New("poll answer must be 'true' or 'false'")
	ErrAlreadyVoted      = errors.New("already voted on this post")
	ErrInvalidToken      = errors.New("invalid or expired access token")
)
