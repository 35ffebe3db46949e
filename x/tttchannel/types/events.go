package types

const (
	EventGameCreated      = "tttchannel.game_created"
	EventGameSettled      = "tttchannel.game_settled"
	EventTimeoutOpened    = "tttchannel.timeout_opened"
	EventTimeoutCancelled = "tttchannel.timeout_cancelled"
	EventGameForfeited    = "tttchannel.game_forfeited"
	EventParamsUpdated    = "tttchannel.params_updated"
)

const (
	AttrGameID         = "game_id"
	AttrChallenger     = "challenger"
	AttrChallenged     = "challenged"
	AttrWinner         = "winner"
	AttrDraw           = "draw"
	AttrMoves          = "moves"
	AttrInactivePlayer = "inactive_player"
	AttrWaitingPlayer  = "waiting_player"
	AttrDeadline       = "deadline"
	AttrSubmitter      = "submitter"
	AttrTimeoutWindow  = "timeout_window"
)
