// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/google/uuid"

	"github.com/expenseflow/backend/internal/application/adapter"
	"github.com/expenseflow/backend/internal/domain/entity"
	domainerror "github.com/expenseflow/backend/internal/domain/error"
)

// fakeExpenseRepo is an in-memory ExpenseRepository for unit tests.
type fakeExpenseRepo struct {
	expenses  map[uuid.UUID]*entity.Expense
	createErr error
	findErr   error
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *expense
	r.expenses[expense.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) FindByOwner(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*entity.Expense
	for _, exp := range r.expenses {
		if exp.UserID == userID {
			cp := *exp
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ExpenseDate.Equal(out[j].ExpenseDate) {
			return out[i].ExpenseDate.After(out[j].ExpenseDate)
		}
		return out[i].ExpenseTime > out[j].ExpenseTime
	})
	if out == nil {
		out = []*entity.Expense{}
	}
	return out, nil
}

func (r *fakeExpenseRepo) UpdateByOwner(_ context.Context, id, userID uuid.UUID, patch adapter.ExpensePatch) (*entity.Expense, error) {
	exp, ok := r.expenses[id]
	if !ok || exp.UserID != userID {
		return nil, domainerror.ErrExpenseNotFound
	}
	if patch.Amount != nil {
		exp.Amount = *patch.Amount
	}
	if patch.Category != nil {
		exp.Category = *patch.Category
	}
	if patch.Description != nil {
		exp.Description = *patch.Description
	}
	if patch.PaymentMethod != nil {
		exp.PaymentMethod = *patch.PaymentMethod
	}
	if patch.ExpenseDate != nil {
		exp.ExpenseDate = *patch.ExpenseDate
	}
	if patch.ExpenseTime != nil {
		exp.ExpenseTime = *patch.ExpenseTime
	}
	if patch.Tags != nil {
		exp.Tags = patch.Tags
	}
	cp := *exp
	return &cp, nil
}

func (r *fakeExpenseRepo) DeleteByOwner(_ context.Context, id, userID uuid.UUID) error {
	exp, ok := r.expenses[id]
	if !ok || exp.UserID != userID {
		return domainerror.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

// fakeListCache is an in-memory ListCache keyed by collection and user.
type fakeListCache struct {
	values      map[string][]byte
	getErr      error
	setErr      error
	invalidated int
}

func newFakeListCache() *fakeListCache {
	return &fakeListCache{values: make(map[string][]byte)}
}

func cacheKey(collection adapter.Collection, userID uuid.UUID) string {
	return string(collection) + ":" + userID.String()
}

func (c *fakeListCache) Get(_ context.Context, collection adapter.Collection, userID uuid.UUID, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.values[cacheKey(collection, userID)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeListCache) Set(_ context.Context, collection adapter.Collection, userID uuid.UUID, value any) error {
	if c.setErr != nil {
		return c.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[cacheKey(collection, userID)] = raw
	return nil
}

func (c *fakeListCache) Invalidate(_ context.Context, collection adapter.Collection, userID uuid.UUID) error {
	c.invalidated++
	delete(c.values, cacheKey(collection, userID))
	return nil
}

func (c *fakeListCache) InvalidateUser(_ context.Context, userID uuid.UUID) error {
	for key := range c.values {
		delete(c.values, key)
	}
	return nil
}

// fakeNotifier records notifications per user.
type fakeNotifier struct {
	sent map[uuid.UUID][]entity.Notification
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(map[uuid.UUID][]entity.Notification)}
}

func (n *fakeNotifier) Notify(_ context.Context, userID uuid.UUID, notification entity.Notification) {
	n.sent[userID] = append(n.sent[userID], notification)
}

func (n *fakeNotifier) lastFor(userID uuid.UUID) (entity.Notification, bool) {
	list := n.sent[userID]
	if len(list) == 0 {
		return entity.Notification{}, false
	}
	return list[len(list)-1], true
}
