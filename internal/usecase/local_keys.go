package usecase

// Keys of the client-side local state.
const (
	clientIDKey          = "client_id"
	selectedInterestsKey = "selectedInterests"
	reactionKeyPrefix    = "post_reaction_"
	pollVoteKeyPrefix    = "poll_vote_"
)

func reactionKey(postID string) string { return reactionKeyPrefix + postID }

func pollVoteKey(postID string) string { return pollVoteKeyPrefix + postID }
