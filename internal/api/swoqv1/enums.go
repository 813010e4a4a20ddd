package swoqv1

import (
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// StartResult is the discriminant returned by GameService.Start.
type StartResult int32

const (
	StartResultOK                StartResult = 0
	StartResultInternalError     StartResult = 1
	StartResultUnknownUser       StartResult = 2
	StartResultQuestQueued       StartResult = 3
	StartResultLevelNotAvailable StartResult = 4
)

func (r StartResult) String() string {
	return enumName(startResultEnum, int32(r))
}

// ActResult is the discriminant returned by GameService.Act.
type ActResult int32

const (
	ActResultOK                ActResult = 0
	ActResultInternalError     ActResult = 1
	ActResultUnknownGameID     ActResult = 2
	ActResultMoveNotAllowed    ActResult = 3
	ActResultUseNotAllowed     ActResult = 4
	ActResultUnknownAction     ActResult = 5
	ActResultGameFinished      ActResult = 6
	ActResultPlayer1NotPresent ActResult = 7
	ActResultPlayer2NotPresent ActResult = 8
	ActResultInventoryFull     ActResult = 9
	ActResultInventoryEmpty    ActResult = 10
	ActResultNoSword           ActResult = 11
)

func (r ActResult) String() string {
	return enumName(actResultEnum, int32(r))
}

// GameStatus reports whether a game is still running and, if not, why it
// ended.
type GameStatus int32

const (
	GameStatusActive              GameStatus = 0
	GameStatusFinishedSuccess     GameStatus = 1
	GameStatusFinishedTimeout     GameStatus = 2
	GameStatusFinishedNoProgress  GameStatus = 3
	GameStatusFinishedPlayerDied  GameStatus = 4
	GameStatusFinishedPlayer2Died GameStatus = 5
)

func (s GameStatus) String() string {
	return enumName(gameStatusEnum, int32(s))
}

// DirectedAction is a single player's move or use in one of four directions.
type DirectedAction int32

const (
	DirectedActionNone      DirectedAction = 0
	DirectedActionMoveNorth DirectedAction = 1
	DirectedActionMoveEast  DirectedAction = 2
	DirectedActionMoveSouth DirectedAction = 3
	DirectedActionMoveWest  DirectedAction = 4
	DirectedActionUseNorth  DirectedAction = 5
	DirectedActionUseEast   DirectedAction = 6
	DirectedActionUseSouth  DirectedAction = 7
	DirectedActionUseWest   DirectedAction = 8
)

func (a DirectedAction) String() string {
	return enumName(directedActionEnum, int32(a))
}

var (
	startResultEnum    = enumDescriptor("StartResult")
	actResultEnum      = enumDescriptor("ActResult")
	gameStatusEnum     = enumDescriptor("GameStatus")
	directedActionEnum = enumDescriptor("DirectedAction")
)

// enumName returns the schema name of n, or the number itself for values
// this client does not know, which newer servers may send.
func enumName(ed protoreflect.EnumDescriptor, n int32) string {
	if v := ed.Values().ByNumber(protoreflect.EnumNumber(n)); v != nil {
		return string(v.Name())
	}
	return strconv.FormatInt(int64(n), 10)
}
