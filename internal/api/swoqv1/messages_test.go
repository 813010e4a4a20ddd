package swoqv1

import (
	"strings"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func TestStartRequestKeepsExplicitZero(t *testing.T) {
	level := int32(0)
	data, err := proto.Marshal(StartRequestBuilder{UserID: "u1", UserName: "Ada", Level: &level}.Build())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got := new(StartRequest)
	if err := proto.Unmarshal(data, got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.HasLevel() || got.GetLevel() != 0 {
		t.Fatalf("expected explicit level 0, got %v", got)
	}
	if got.HasSeed() {
		t.Fatalf("expected seed unset, got %d", got.GetSeed())
	}
	if got.GetUserID() != "u1" || got.GetUserName() != "Ada" {
		t.Fatalf("unexpected identity %q %q", got.GetUserID(), got.GetUserName())
	}
}

func TestStartResponseAbsentOptionals(t *testing.T) {
	data, err := proto.Marshal(StartResponseBuilder{Result: StartResultQuestQueued}.Build())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := new(StartResponse)
	if err := proto.Unmarshal(data, got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.GetResult() != StartResultQuestQueued {
		t.Fatalf("expected queued, got %s", got.GetResult())
	}
	if got.HasGameID() || got.HasSeed() || got.GetState() != nil {
		t.Fatalf("expected no game metadata, got %v", got)
	}
}

func TestStartResponseMergesSplitState(t *testing.T) {
	var tick, level []byte
	tick = protowire.AppendTag(tick, 1, protowire.VarintType)
	tick = protowire.AppendVarint(tick, 5)
	level = protowire.AppendTag(level, 2, protowire.VarintType)
	level = protowire.AppendVarint(level, 3)

	var data []byte
	data = protowire.AppendTag(data, 6, protowire.BytesType)
	data = protowire.AppendBytes(data, tick)
	data = protowire.AppendTag(data, 6, protowire.BytesType)
	data = protowire.AppendBytes(data, level)

	got := new(StartResponse)
	if err := proto.Unmarshal(data, got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	state := got.GetState()
	if state.GetTick() != 5 || state.GetLevel() != 3 {
		t.Fatalf("expected tick 5 level 3, got %v", state)
	}
}

func TestMarshalRejectsInvalidUTF8(t *testing.T) {
	_, err := proto.Marshal(StartRequestBuilder{UserID: "\xff\xfe"}.Build())
	if err == nil || !strings.Contains(err.Error(), "UTF-8") {
		t.Fatalf("expected invalid UTF-8 error, got %v", err)
	}

	var data []byte
	data = protowire.AppendTag(data, 1, protowire.BytesType)
	data = protowire.AppendString(data, "\xff")
	if err := proto.Unmarshal(data, new(ActRequest)); err == nil {
		t.Fatal("expected unmarshal error for invalid game id")
	}
}

func TestStateKeepsUnknownFields(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 9)
	data = protowire.AppendTag(data, 4, protowire.BytesType)
	data = protowire.AppendBytes(data, []byte("player"))

	state := new(State)
	if err := proto.Unmarshal(data, state); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(state.ProtoReflect().GetUnknown()) == 0 {
		t.Fatal("expected field 4 to be kept as unknown")
	}

	again, err := proto.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded := new(State)
	if err := proto.Unmarshal(again, decoded); err != nil {
		t.Fatalf("unmarshal again: %v", err)
	}
	if !proto.Equal(state, decoded) {
		t.Fatalf("expected unknown fields to survive, got %v want %v", decoded, state)
	}
	if decoded.GetTick() != 9 {
		t.Fatalf("expected tick 9, got %d", decoded.GetTick())
	}
}

func TestGettersOnNil(t *testing.T) {
	var start *StartResponse
	if start.GetResult() != StartResultOK || start.GetGameID() != "" || start.HasSeed() || start.GetState() != nil {
		t.Fatal("expected zero values from nil start response")
	}
	var act *ActResponse
	if act.GetResult() != ActResultOK || act.GetState() != nil {
		t.Fatal("expected zero values from nil act response")
	}
	var state *State
	if state.GetTick() != 0 || state.GetLevel() != 0 || state.GetStatus() != GameStatusActive {
		t.Fatal("expected zero values from nil state")
	}
	var request *ActRequest
	if request.HasAction() || request.GetAction2() != DirectedActionNone {
		t.Fatal("expected zero values from nil act request")
	}
	if state.String() != "{}" {
		t.Fatalf("expected empty text, got %q", state.String())
	}
}

func TestSetStateNilClears(t *testing.T) {
	resp := ActResponseBuilder{Result: ActResultOK, State: StateBuilder{Tick: 1}.Build()}.Build()
	resp.SetState(nil)
	if resp.GetState() != nil {
		t.Fatalf("expected state cleared, got %v", resp.GetState())
	}
}

func TestEnumNames(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{StartResultQuestQueued.String(), "START_RESULT_QUEST_QUEUED"},
		{ActResultNoSword.String(), "ACT_RESULT_NO_SWORD"},
		{GameStatusFinishedPlayer2Died.String(), "GAME_STATUS_FINISHED_PLAYER2_DIED"},
		{DirectedActionUseWest.String(), "DIRECTED_ACTION_USE_WEST"},
		{StartResult(42).String(), "42"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("expected %s, got %s", tt.want, tt.got)
		}
	}
}
