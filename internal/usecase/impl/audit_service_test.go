package impl

import (
	"context"
	"testing"
	"time"

	"containerview/internal/domain/entity"
	"containerview/internal/domain/service"
	"containerview/internal/errors"
	mockRepo "containerview/internal/mocks/repository"
	"containerview/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestAuditService(t *testing.T) (usecase.AuditUsecase, *mockRepo.MockAuditEventRepository) {
	t.Helper()

	repo := mockRepo.NewMockAuditEventRepository(t)
	srv := NewAuditService(AuditServiceParams{AuditRepo: repo, Logger: newDiscardLogger()})
	srv.(*auditService).now = func() time.Time { return testNow }

	return srv, repo
}

func TestAuditService_Record(t *testing.T) {
	srv, repo := createTestAuditService(t)
	occurred := testNow.Add(-2 * time.Second)

	repo.EXPECT().Record(mock.Anything, &entity.AuditEvent{
		EventID:    "evt-1",
		Type:       string(service.AuthEventVerificationFailed),
		Identity:   testIdentity,
		Method:     usecase.MethodEmail,
		RemoteIP:   "203.0.113.7",
		RequestID:  "req-1",
		MessageID:  "msg-1",
		OccurredAt: occurred,
		ReceivedAt: testNow,
	}).Return(true, nil)

	err := srv.Record(context.Background(), &service.AuthEvent{
		EventID:    "evt-1",
		Type:       service.AuthEventVerificationFailed,
		Identity:   testIdentity,
		Method:     usecase.MethodEmail,
		RemoteIP:   "203.0.113.7",
		RequestID:  "req-1",
		OccurredAt: occurred,
	}, "msg-1")

	assert.NoError(t, err)
}

func TestAuditService_Record_DuplicateIsAcknowledged(t *testing.T) {
	srv, repo := createTestAuditService(t)
	repo.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *entity.AuditEvent) bool {
		return e.OccurredAt.Equal(testNow)
	})).Return(false, nil)

	err := srv.Record(context.Background(), &service.AuthEvent{
		EventID: "evt-1",
		Type:    service.AuthEventLoginSucceeded,
	}, "msg-2")

	assert.NoError(t, err)
}

func TestAuditService_Record_RejectsMalformedEvents(t *testing.T) {
	srv, _ := createTestAuditService(t)

	for name, event := range map[string]*service.AuthEvent{
		"missing id":   {Type: service.AuthEventLoginFailed},
		"unknown type": {EventID: "evt-1", Type: "password.reset"},
	} {
		t.Run(name, func(t *testing.T) {
			err := srv.Record(context.Background(), event, "msg-1")
			assert.ErrorIs(t, err, usecase.ErrInvalidAuditEvent)
		})
	}
}

func TestAuditService_Record_StorageFailure(t *testing.T) {
	srv, repo := createTestAuditService(t)
	repo.EXPECT().Record(mock.Anything, mock.Anything).Return(false, errors.New("connection reset"))

	err := srv.Record(context.Background(), &service.AuthEvent{EventID: "evt-1", Type: service.AuthEventLoginFailed}, "msg-1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrInvalidAuditEvent)
}
