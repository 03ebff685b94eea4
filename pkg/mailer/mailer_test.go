package mailer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gomail.v2"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

type fakeDialer struct {
	failTo map[string]bool
	sent   []string
}

func (f *fakeDialer) DialAndSend(msgs ...*gomail.Message) error {
	for _, m := range msgs {
		to := m.GetHeader("To")[0]
		if f.failTo[to] {
			return errors.New("smtp: rejected " + to)
		}
		f.sent = append(f.sent, to)
	}
	return nil
}

func testConfig() Config {
	return Config{Host: "localhost", Port: 587, From: "noreply@merabazaar.com"}
}

func TestBroadcastIsolatesPerRecipientFailures(t *testing.T) {
	fd := &fakeDialer{failTo: map[string]bool{"b@example.com": true}}
	m := newMailer(testConfig(), fd)

	err := m.Broadcast([]string{"a@example.com", "b@example.com", "c@example.com"},
		"New Coupon Code Available!", "Use code SAVE10")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3")
	// the failing recipient must not abort the rest of the broadcast
	assert.Equal(t, []string{"a@example.com", "c@example.com"}, fd.sent)
}

func TestBroadcastAllDelivered(t *testing.T) {
	fd := &fakeDialer{}
	m := newMailer(testConfig(), fd)

	err := m.Broadcast([]string{"a@example.com", "b@example.com"}, "subject", "body")

	assert.NoError(t, err)
	assert.Len(t, fd.sent, 2)
}

func TestDispatchSurfacesErrorOnChannel(t *testing.T) {
	m := newMailer(testConfig(), &fakeDialer{})

	m.Dispatch(func() error { return errors.New("boom") })

	select {
	case err := <-m.errs:
		assert.EqualError(t, err, "boom")
	case <-time.After(time.Second):
		t.Fatal("dispatched task never reported")
	}
}

func TestDispatchDoesNotBlockCaller(t *testing.T) {
	m := newMailer(testConfig(), &fakeDialer{})

	started := make(chan struct{})
	release := make(chan struct{})
	m.Dispatch(func() error {
		close(started)
		<-release
		return nil
	})

	// Dispatch returned while the send is still in flight
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("dispatched task never started")
	}
	close(release)
	assert.NoError(t, <-m.errs)
}

func TestSendOrderConfirmation(t *testing.T) {
	fd := &fakeDialer{}
	m := newMailer(testConfig(), fd)

	order := &models.Order{
		OrderID:         "123456",
		TrackingID:      "A1B2C3D4E5F6",
		Name:            "Asha",
		Email:           "asha@example.com",
		Price:           1080,
		FreeDelivery:    true,
		DiscountApplied: 120,
	}

	assert.NoError(t, m.SendOrderConfirmation(order))
	assert.Equal(t, []string{"asha@example.com"}, fd.sent)
}
