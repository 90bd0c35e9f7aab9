package stepcounter_test

import (
	"context"
	"errors"
	"sync"

	"github.com/stepsquad/stepsquad/internal/models"
	"github.com/stepsquad/stepsquad/stepcounter"
)

var errBoom = errors.New("boom")

type memStore struct {
	data   map[string]string
	getErr error
	setErr error
	ops    []string
	mu     sync.Mutex
}

func newMemStore(kv ...string) *memStore {
	s := &memStore{data: make(map[string]string)}

	for i := 0; i+1 < len(kv); i += 2 {
		s.data[kv[i]] = kv[i+1]
	}

	return s
}

func (s *memStore) GetItem(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ops = append(s.ops, "get")

	if s.getErr != nil {
		return "", false, s.getErr
	}

	v, ok := s.data[key]

	return v, ok, nil
}

func (s *memStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ops = append(s.ops, "set:"+value)

	if s.setErr != nil {
		return s.setErr
	}

	s.data[key] = value

	return nil
}

func (s *memStore) value(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data[key]
}

func (s *memStore) history() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.ops...)
}

type fakeSensor struct {
	fn           func(stepcounter.Event)
	permission   stepcounter.Permission
	permErr      error
	available    bool
	subscribed   bool
	unsubscribed bool
	mu           sync.Mutex
}

func grantedSensor() *fakeSensor {
	return &fakeSensor{
		permission: stepcounter.PermissionGranted,
		available:  true,
	}
}

func (f *fakeSensor) RequestPermission(
	_ context.Context,
) (stepcounter.Permission, error) {
	return f.permission, f.permErr
}

func (f *fakeSensor) IsAvailable(_ context.Context) (bool, error) {
	return f.available, nil
}

func (f *fakeSensor) Subscribe(
	fn func(stepcounter.Event),
) (stepcounter.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fn = fn
	f.subscribed = true

	return f, nil
}

func (f *fakeSensor) Unsubscribe() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.unsubscribed = true
}

// emit delivers a reading the way the sensor goroutine would, ignoring
// whether the subscription was released.
func (f *fakeSensor) emit(steps ...int) {
	f.mu.Lock()
	fn := f.fn
	f.mu.Unlock()

	for _, s := range steps {
		fn(stepcounter.Event{Steps: s})
	}
}

type fakeActivity struct {
	activity *models.Activity
	fetchErr error
	syncErr  error
	updates  []models.ActivityUpdate
	mu       sync.Mutex
}

func (f *fakeActivity) Today(_ context.Context) (*models.Activity, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	a := *f.activity

	return &a, nil
}

func (f *fakeActivity) Update(
	_ context.Context,
	req models.ActivityUpdate,
) (*models.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.syncErr != nil {
		return nil, f.syncErr
	}

	f.updates = append(f.updates, req)

	a := *f.activity
	a.Quantity = req.Quantity

	return &a, nil
}

func (f *fakeActivity) sent() []models.ActivityUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]models.ActivityUpdate(nil), f.updates...)
}
