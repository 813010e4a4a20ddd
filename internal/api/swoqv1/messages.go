// Package swoqv1 holds the swoq.v1 GameService messages and the gRPC client
// and server bindings.
//
// The schema in api/proto/swoq/v1/swoq.proto is mirrored by File, and every
// message type wraps a dynamic protobuf message of that schema. The types
// implement proto.Message, so proto.Marshal, protodelim and the default gRPC
// codec encode them. Fields this client does not read stay in the message as
// unknown fields and are written back unchanged.
//
// Zero values are empty messages ready for proto.Unmarshal. Getters are safe
// on nil receivers.
package swoqv1

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

var (
	startRequestType     = messageDescriptor("StartRequest")
	startRequestUserID   = fieldDescriptor(startRequestType, "user_id")
	startRequestUserName = fieldDescriptor(startRequestType, "user_name")
	startRequestLevel    = fieldDescriptor(startRequestType, "level")
	startRequestSeed     = fieldDescriptor(startRequestType, "seed")

	startResponseType            = messageDescriptor("StartResponse")
	startResponseResult          = fieldDescriptor(startResponseType, "result")
	startResponseGameID          = fieldDescriptor(startResponseType, "game_id")
	startResponseMapWidth        = fieldDescriptor(startResponseType, "map_width")
	startResponseMapHeight       = fieldDescriptor(startResponseType, "map_height")
	startResponseVisibilityRange = fieldDescriptor(startResponseType, "visibility_range")
	startResponseState           = fieldDescriptor(startResponseType, "state")
	startResponseSeed            = fieldDescriptor(startResponseType, "seed")

	actRequestType    = messageDescriptor("ActRequest")
	actRequestGameID  = fieldDescriptor(actRequestType, "game_id")
	actRequestAction  = fieldDescriptor(actRequestType, "action")
	actRequestAction2 = fieldDescriptor(actRequestType, "action2")

	actResponseType   = messageDescriptor("ActResponse")
	actResponseResult = fieldDescriptor(actResponseType, "result")
	actResponseState  = fieldDescriptor(actResponseType, "state")

	stateType   = messageDescriptor("State")
	stateTick   = fieldDescriptor(stateType, "tick")
	stateLevel  = fieldDescriptor(stateType, "level")
	stateStatus = fieldDescriptor(stateType, "status")
)

// StartRequest asks the server to admit a user to a new game.
type StartRequest struct{ msg protoreflect.Message }

// StartRequestBuilder lists StartRequest fields. Nil pointers stay unset.
type StartRequestBuilder struct {
	UserID   string
	UserName string
	Level    *int32
	Seed     *int32
}

func (b StartRequestBuilder) Build() *StartRequest {
	m := new(StartRequest)
	m.SetUserID(b.UserID)
	m.SetUserName(b.UserName)
	if b.Level != nil {
		m.SetLevel(*b.Level)
	}
	if b.Seed != nil {
		m.SetSeed(*b.Seed)
	}
	return m
}

func (m *StartRequest) ProtoReflect() protoreflect.Message { return lazy(&m.msg, startRequestType) }
func (m *StartRequest) String() string                     { return format(m, m.view()) }

func (m *StartRequest) view() protoreflect.Message {
	if m == nil {
		return nil
	}
	return m.msg
}

func (m *StartRequest) GetUserID() string   { return getString(m.view(), startRequestUserID) }
func (m *StartRequest) GetUserName() string { return getString(m.view(), startRequestUserName) }
func (m *StartRequest) GetLevel() int32     { return getInt32(m.view(), startRequestLevel) }
func (m *StartRequest) HasLevel() bool      { return has(m.view(), startRequestLevel) }
func (m *StartRequest) GetSeed() int32      { return getInt32(m.view(), startRequestSeed) }
func (m *StartRequest) HasSeed() bool       { return has(m.view(), startRequestSeed) }

func (m *StartRequest) SetUserID(v string)   { setString(m.ProtoReflect(), startRequestUserID, v) }
func (m *StartRequest) SetUserName(v string) { setString(m.ProtoReflect(), startRequestUserName, v) }
func (m *StartRequest) SetLevel(v int32)     { setInt32(m.ProtoReflect(), startRequestLevel, v) }
func (m *StartRequest) SetSeed(v int32)      { setInt32(m.ProtoReflect(), startRequestSeed, v) }

// StartResponse carries the admission result and, on success, the fixed game
// metadata and the initial state.
type StartResponse struct{ msg protoreflect.Message }

// StartResponseBuilder lists StartResponse fields. Nil pointers stay unset.
type StartResponseBuilder struct {
	Result          StartResult
	GameID          *string
	MapWidth        *int32
	MapHeight       *int32
	VisibilityRange *int32
	State           *State
	Seed            *int32
}

func (b StartResponseBuilder) Build() *StartResponse {
	m := new(StartResponse)
	m.SetResult(b.Result)
	if b.GameID != nil {
		m.SetGameID(*b.GameID)
	}
	if b.MapWidth != nil {
		m.SetMapWidth(*b.MapWidth)
	}
	if b.MapHeight != nil {
		m.SetMapHeight(*b.MapHeight)
	}
	if b.VisibilityRange != nil {
		m.SetVisibilityRange(*b.VisibilityRange)
	}
	m.SetState(b.State)
	if b.Seed != nil {
		m.SetSeed(*b.Seed)
	}
	return m
}

func (m *StartResponse) ProtoReflect() protoreflect.Message { return lazy(&m.msg, startResponseType) }
func (m *StartResponse) String() string                     { return format(m, m.view()) }

func (m *StartResponse) view() protoreflect.Message {
	if m == nil {
		return nil
	}
	return m.msg
}

func (m *StartResponse) GetResult() StartResult {
	return StartResult(getEnum(m.view(), startResponseResult))
}

func (m *StartResponse) GetGameID() string         { return getString(m.view(), startResponseGameID) }
func (m *StartResponse) HasGameID() bool           { return has(m.view(), startResponseGameID) }
func (m *StartResponse) GetMapWidth() int32        { return getInt32(m.view(), startResponseMapWidth) }
func (m *StartResponse) GetMapHeight() int32       { return getInt32(m.view(), startResponseMapHeight) }
func (m *StartResponse) GetVisibilityRange() int32 { return getInt32(m.view(), startResponseVisibilityRange) }
func (m *StartResponse) GetSeed() int32            { return getInt32(m.view(), startResponseSeed) }
func (m *StartResponse) HasSeed() bool             { return has(m.view(), startResponseSeed) }

// GetState returns the initial state, or nil when the server sent none.
func (m *StartResponse) GetState() *State {
	return stateOf(getMessage(m.view(), startResponseState))
}

func (m *StartResponse) SetResult(v StartResult) {
	setEnum(m.ProtoReflect(), startResponseResult, int32(v))
}

func (m *StartResponse) SetGameID(v string)         { setString(m.ProtoReflect(), startResponseGameID, v) }
func (m *StartResponse) SetMapWidth(v int32)        { setInt32(m.ProtoReflect(), startResponseMapWidth, v) }
func (m *StartResponse) SetMapHeight(v int32)       { setInt32(m.ProtoReflect(), startResponseMapHeight, v) }
func (m *StartResponse) SetVisibilityRange(v int32) { setInt32(m.ProtoReflect(), startResponseVisibilityRange, v) }
func (m *StartResponse) SetSeed(v int32)            { setInt32(m.ProtoReflect(), startResponseSeed, v) }

// SetState stores s in the response; nil clears it.
func (m *StartResponse) SetState(s *State) { setMessage(m.ProtoReflect(), startResponseState, s) }

// ActRequest applies one turn to a game. Action is the first player's action
// and Action2 the optional second player's.
type ActRequest struct{ msg protoreflect.Message }

// ActRequestBuilder lists ActRequest fields. Nil pointers stay unset.
type ActRequestBuilder struct {
	GameID  string
	Action  *DirectedAction
	Action2 *DirectedAction
}

func (b ActRequestBuilder) Build() *ActRequest {
	m := new(ActRequest)
	m.SetGameID(b.GameID)
	if b.Action != nil {
		m.SetAction(*b.Action)
	}
	if b.Action2 != nil {
		m.SetAction2(*b.Action2)
	}
	return m
}

func (m *ActRequest) ProtoReflect() protoreflect.Message { return lazy(&m.msg, actRequestType) }
func (m *ActRequest) String() string                     { return format(m, m.view()) }

func (m *ActRequest) view() protoreflect.Message {
	if m == nil {
		return nil
	}
	return m.msg
}

func (m *ActRequest) GetGameID() string { return getString(m.view(), actRequestGameID) }
func (m *ActRequest) HasAction() bool   { return has(m.view(), actRequestAction) }
func (m *ActRequest) HasAction2() bool  { return has(m.view(), actRequestAction2) }

func (m *ActRequest) GetAction() DirectedAction {
	return DirectedAction(getEnum(m.view(), actRequestAction))
}

func (m *ActRequest) GetAction2() DirectedAction {
	return DirectedAction(getEnum(m.view(), actRequestAction2))
}

func (m *ActRequest) SetGameID(v string) { setString(m.ProtoReflect(), actRequestGameID, v) }

func (m *ActRequest) SetAction(v DirectedAction) {
	setEnum(m.ProtoReflect(), actRequestAction, int32(v))
}

func (m *ActRequest) SetAction2(v DirectedAction) {
	setEnum(m.ProtoReflect(), actRequestAction2, int32(v))
}

// ActResponse carries the turn result and the state after the turn.
type ActResponse struct{ msg protoreflect.Message }

// ActResponseBuilder lists ActResponse fields.
type ActResponseBuilder struct {
	Result ActResult
	State  *State
}

func (b ActResponseBuilder) Build() *ActResponse {
	m := new(ActResponse)
	m.SetResult(b.Result)
	m.SetState(b.State)
	return m
}

func (m *ActResponse) ProtoReflect() protoreflect.Message { return lazy(&m.msg, actResponseType) }
func (m *ActResponse) String() string                     { return format(m, m.view()) }

func (m *ActResponse) view() protoreflect.Message {
	if m == nil {
		return nil
	}
	return m.msg
}

func (m *ActResponse) GetResult() ActResult {
	return ActResult(getEnum(m.view(), actResponseResult))
}

// GetState returns the state after the turn, or nil when the server sent none.
func (m *ActResponse) GetState() *State {
	return stateOf(getMessage(m.view(), actResponseState))
}

func (m *ActResponse) SetResult(v ActResult) {
	setEnum(m.ProtoReflect(), actResponseResult, int32(v))
}

// SetState stores s in the response; nil clears it.
func (m *ActResponse) SetState(s *State) { setMessage(m.ProtoReflect(), actResponseState, s) }

// State is a server snapshot of the game world. Only the header fields have
// accessors; the rest of the snapshot is carried as unknown fields.
type State struct{ msg protoreflect.Message }

// StateBuilder lists State fields.
type StateBuilder struct {
	Tick   int32
	Level  int32
	Status GameStatus
}

func (b StateBuilder) Build() *State {
	m := new(State)
	m.SetTick(b.Tick)
	m.SetLevel(b.Level)
	m.SetStatus(b.Status)
	return m
}

func (m *State) ProtoReflect() protoreflect.Message { return lazy(&m.msg, stateType) }
func (m *State) String() string                     { return format(m, m.view()) }

func (m *State) view() protoreflect.Message {
	if m == nil {
		return nil
	}
	return m.msg
}

func (m *State) GetTick() int32  { return getInt32(m.view(), stateTick) }
func (m *State) GetLevel() int32 { return getInt32(m.view(), stateLevel) }

func (m *State) GetStatus() GameStatus {
	return GameStatus(getEnum(m.view(), stateStatus))
}

func (m *State) SetTick(v int32)  { setInt32(m.ProtoReflect(), stateTick, v) }
func (m *State) SetLevel(v int32) { setInt32(m.ProtoReflect(), stateLevel, v) }

func (m *State) SetStatus(v GameStatus) {
	setEnum(m.ProtoReflect(), stateStatus, int32(v))
}

func stateOf(msg protoreflect.Message) *State {
	if msg == nil {
		return nil
	}
	return &State{msg: msg}
}

// lazy allocates the dynamic message behind a zero wrapper.
func lazy(msg *protoreflect.Message, md protoreflect.MessageDescriptor) protoreflect.Message {
	if *msg == nil {
		*msg = dynamicpb.NewMessage(md)
	}
	return *msg
}

func format(m proto.Message, view protoreflect.Message) string {
	if view == nil {
		return "{}"
	}
	return prototext.MarshalOptions{}.Format(m)
}

func has(msg protoreflect.Message, fd protoreflect.FieldDescriptor) bool {
	return msg != nil && msg.Has(fd)
}

func getString(msg protoreflect.Message, fd protoreflect.FieldDescriptor) string {
	if msg == nil {
		return ""
	}
	return msg.Get(fd).String()
}

func getInt32(msg protoreflect.Message, fd protoreflect.FieldDescriptor) int32 {
	if msg == nil {
		return 0
	}
	return int32(msg.Get(fd).Int())
}

func getEnum(msg protoreflect.Message, fd protoreflect.FieldDescriptor) int32 {
	if msg == nil {
		return 0
	}
	return int32(msg.Get(fd).Enum())
}

func getMessage(msg protoreflect.Message, fd protoreflect.FieldDescriptor) protoreflect.Message {
	if !has(msg, fd) {
		return nil
	}
	return msg.Get(fd).Message()
}

func setString(msg protoreflect.Message, fd protoreflect.FieldDescriptor, v string) {
	msg.Set(fd, protoreflect.ValueOfString(v))
}

func setInt32(msg protoreflect.Message, fd protoreflect.FieldDescriptor, v int32) {
	msg.Set(fd, protoreflect.ValueOfInt32(v))
}

func setEnum(msg protoreflect.Message, fd protoreflect.FieldDescriptor, v int32) {
	msg.Set(fd, protoreflect.ValueOfEnum(protoreflect.EnumNumber(v)))
}

func setMessage(msg protoreflect.Message, fd protoreflect.FieldDescriptor, v *State) {
	if v == nil {
		msg.Clear(fd)
		return
	}
	msg.Set(fd, protoreflect.ValueOfMessage(v.ProtoReflect()))
}
