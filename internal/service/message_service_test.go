package service_test

import (
	"context"
	"testing"

	"foodigo/internal/domain"
	"foodigo/internal/mocks"
	"foodigo/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Send(t *testing.T) {
	t.Run("guest message", func(t *testing.T) {
		repo := mocks.NewMessageRepository(t)
		repo.On("CreateMessage", mock.Anything, mock.MatchedBy(func(m *domain.Message) bool {
			return m.UserID == "" && !m.IsRead && m.Replies != nil && m.ID != ""
		})).Return(nil).Once()

		msg := &domain.Message{Name: "Ada", Email: "ada@example.com", Subject: "Late", Message: "Where is it?"}
		require.NoError(t, service.NewMessageService(repo).Send(context.Background(), msg))
	})

	t.Run("missing subject", func(t *testing.T) {
		msg := &domain.Message{Name: "Ada", Email: "ada@example.com", Message: "Hi"}
		err := service.NewMessageService(mocks.NewMessageRepository(t)).Send(context.Background(), msg)
		assert.True(t, service.IsValidation(err))
	})
}

func TestMessageService_Reply(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		rows    int64
		call    bool
		wantErr error
		valid   bool
	}{
		{name: "appended", text: "On its way", rows: 1, call: true},
		{name: "unknown message", text: "Hello", rows: 0, call: true, wantErr: service.ErrMessageNotFound},
		{name: "empty reply", valid: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMessageRepository(t)
			if testCase.call {
				repo.On("AddReply", mock.Anything, "m1", mock.MatchedBy(func(r domain.Reply) bool {
					return r.AdminID == "a1" && r.ReplyText == testCase.text && !r.Timestamp.IsZero()
				})).Return(testCase.rows, nil).Once()
			}

			err := service.NewMessageService(repo).Reply(context.Background(), "a1", "m1", testCase.text)
			switch {
			case testCase.valid:
				assert.True(t, service.IsValidation(err))
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestMessageService_MarkReadAndDelete(t *testing.T) {
	repo := mocks.NewMessageRepository(t)
	repo.On("MarkMessageRead", mock.Anything, "m1").Return(int64(1), nil).Once()
	repo.On("DeleteMessage", mock.Anything, "m2").Return(int64(0), nil).Once()
	svc := service.NewMessageService(repo)

	assert.NoError(t, svc.MarkRead(context.Background(), "m1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "m2"), service.ErrMessageNotFound)
}
