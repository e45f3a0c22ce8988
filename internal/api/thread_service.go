package api

import (
	"context"
	"time"

	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/matheus3301/huddle/internal/thread"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// DraftDiscarded is the SendText reply for an accepted draft.
const DraftDiscarded = "message delivery is not available; draft discarded"

// ThreadService implements rpc.ThreadServer over the fixture store.
type ThreadService struct {
	src    Source
	views  roster.ViewBuilder
	logger *zap.Logger
	now    func() time.Time
}

// NewThreadService creates a thread service.
func NewThreadService(src Source, views roster.ViewBuilder, logger *zap.Logger) *ThreadService {
	return &ThreadService{src: src, views: views, logger: logger, now: time.Now}
}

func (s *ThreadService) ListMessages(_ context.Context, req *rpc.ListMessagesRequest) (*rpc.ListMessagesResponse, error) {
	c, err := s.conversation(req.ConversationID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.src.ListMessages(req.ConversationID)
	if err != nil {
		return nil, toStatus("list messages", err)
	}

	now := req.At(s.now())
	return &rpc.ListMessagesResponse{
		Conversation: s.views.Row(*c, now),
		Items:        thread.Build(msgs, now),
	}, nil
}

// SendText validates a draft and discards it. Nothing is delivered.
func (s *ThreadService) SendText(_ context.Context, req *rpc.SendTextRequest) (*rpc.SendTextResponse, error) {
	if _, err := s.conversation(req.ConversationID); err != nil {
		return nil, err
	}
	text, err := thread.Compose(req.Text)
	if err != nil {
		return nil, toStatus("send text", err)
	}
	s.logger.Info("draft discarded",
		zap.String("conversation", req.ConversationID),
		zap.Int("length", len(text)),
	)
	return &rpc.SendTextResponse{Accepted: false, Message: DraftDiscarded}, nil
}

func (s *ThreadService) conversation(id string) (*roster.Conversation, error) {
	if id == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "conversation_id is required")
	}
	c, err := s.src.GetConversation(id)
	if err != nil {
		return nil, toStatus("get conversation", err)
	}
	if c == nil {
		return nil, grpcstatus.Errorf(codes.NotFound, "conversation %q not found", id)
	}
	return c, nil
}
