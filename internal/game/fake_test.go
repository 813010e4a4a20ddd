package game

import (
	"context"
	"sync"

	"github.com/louisbranch/swoq/internal/api/swoqv1"
	gogrpc "google.golang.org/grpc"
)

type startReply struct {
	response *swoqv1.StartResponse
	err      error
}

type actReply struct {
	response *swoqv1.ActResponse
	err      error
}

// fakeClient replays scripted replies in order and repeats the last one
// once the script runs out.
type fakeClient struct {
	mu           sync.Mutex
	startReplies []startReply
	actReplies   []actReply
	starts       []*swoqv1.StartRequest
	acts         []*swoqv1.ActRequest
}

func (f *fakeClient) Start(_ context.Context, in *swoqv1.StartRequest, _ ...gogrpc.CallOption) (*swoqv1.StartResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts = append(f.starts, in)
	reply := f.startReplies[min(len(f.starts), len(f.startReplies))-1]
	return reply.response, reply.err
}

func (f *fakeClient) Act(_ context.Context, in *swoqv1.ActRequest, _ ...gogrpc.CallOption) (*swoqv1.ActResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acts = append(f.acts, in)
	reply := f.actReplies[min(len(f.acts), len(f.actReplies))-1]
	return reply.response, reply.err
}

func (f *fakeClient) startCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.starts)
}

func queued() startReply {
	return startReply{response: swoqv1.StartResponseBuilder{Result: swoqv1.StartResultQuestQueued}.Build()}
}

func admitted(gameID string) startReply {
	width, height, visibility, seed := int32(16), int32(12), int32(4), int32(99)
	return startReply{response: swoqv1.StartResponseBuilder{
		Result:          swoqv1.StartResultOK,
		GameID:          &gameID,
		MapWidth:        &width,
		MapHeight:       &height,
		VisibilityRange: &visibility,
		Seed:            &seed,
		State:           swoqv1.StateBuilder{Tick: 0, Level: 1, Status: swoqv1.GameStatusActive}.Build(),
	}.Build()}
}

func actOK(tick int32) actReply {
	return actReply{response: swoqv1.ActResponseBuilder{
		Result: swoqv1.ActResultOK,
		State:  swoqv1.StateBuilder{Tick: tick, Level: 1, Status: swoqv1.GameStatusActive}.Build(),
	}.Build()}
}

func actRejectedReply(result swoqv1.ActResult, tick int32) actReply {
	return actReply{response: swoqv1.ActResponseBuilder{
		Result: result,
		State:  swoqv1.StateBuilder{Tick: tick, Level: 1}.Build(),
	}.Build()}
}

func discardLog(string, ...any) {}
