package feedback

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apnapan/pulse/core"
)

type fakeRepo struct {
	entries []Entry
	err     error
}

func (r *fakeRepo) AppendEntry(entry Entry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entry)
	return nil
}

type fakeMailSvc struct {
	sent []*core.EmailMessage
}

func (svc *fakeMailSvc) SendMessages(messages ...*core.EmailMessage) {
	svc.sent = append(svc.sent, messages...)
}

func TestService_Submit(t *testing.T) {
	repo := new(fakeRepo)
	mailSvc := new(fakeMailSvc)
	svc := NewService(repo, mailSvc)

	origFeedbackEmail := core.Conf.FeedbackEmail
	core.Conf.FeedbackEmail = "team@school.edu"
	defer func() { core.Conf.FeedbackEmail = origFeedbackEmail }()

	entry, err := svc.Submit(NewEntry{Text: "Love the dashboard!"})
	require.NoError(t, err)

	assert.Equal(t, "Love the dashboard!", entry.Text)
	assert.WithinDuration(t, time.Now().UTC(), entry.CreatedAt, time.Minute)

	require.Len(t, repo.entries, 1)
	assert.Equal(t, entry, repo.entries[0])

	require.Len(t, mailSvc.sent, 1)
	assert.Equal(t, "team@school.edu", mailSvc.sent[0].To[0].Address)
	assert.Contains(t, mailSvc.sent[0].Body, "Love the dashboard!")
}

func TestService_Submit_noNotificationAddress(t *testing.T) {
	repo := new(fakeRepo)
	mailSvc := new(fakeMailSvc)
	svc := NewService(repo, mailSvc)

	origFeedbackEmail := core.Conf.FeedbackEmail
	core.Conf.FeedbackEmail = ""
	defer func() { core.Conf.FeedbackEmail = origFeedbackEmail }()

	_, err := svc.Submit(NewEntry{Text: "hello"})
	require.NoError(t, err)

	assert.Len(t, repo.entries, 1)
	assert.Empty(t, mailSvc.sent)
}

func TestService_Submit_appendFailure(t *testing.T) {
	repo := &fakeRepo{err: core.NewConnectivityError(errors.New("boom"), "appending row")}
	svc := NewService(repo, nil)

	_, err := svc.Submit(NewEntry{Text: "hello"})

	assert.True(t, core.IsConnectivityError(err))
	assert.EqualError(t, err, "the remote store could not be reached, please try again later")
}

func TestNewEntry_Validate(t *testing.T) {
	ne := &NewEntry{Text: "  some feedback  "}
	require.NoError(t, ne.Validate())
	assert.Equal(t, "some feedback", ne.Text)

	assert.Error(t, (&NewEntry{}).Validate())
}
