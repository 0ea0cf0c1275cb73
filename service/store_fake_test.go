package service

import (
	"context"
	"errors"
	"time"

	"fintrack/models"
)

var errNotFound = errors.New("not found")

// memStore 内存实现的 Store，用于测试
type memStore struct {
	users     map[uint]*models.User
	txns      []models.Transaction
	goals     []models.Goal
	debts     []models.Debt
	catalog   []models.Badge
	earned    []models.UserBadge
	insertErr error
	loadErr   error
	nextID    uint
}

func newMemStore(catalog []models.Badge) *memStore {
	for i := range catalog {
		catalog[i].ID = uint(i + 1)
	}
	return &memStore{users: make(map[uint]*models.User), catalog: catalog}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) EnsureUser(_ context.Context, userID uint) error {
	if _, ok := m.users[userID]; !ok {
		m.users[userID] = &models.User{ID: userID}
	}
	return nil
}

func (m *memStore) GetUser(_ context.Context, userID uint) (*models.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (m *memStore) LoadTransactions(_ context.Context, userID uint) ([]models.Transaction, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	var out []models.Transaction
	for _, t := range m.txns {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memStore) LoadGoals(_ context.Context, userID uint) ([]models.Goal, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	var out []models.Goal
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memStore) LoadDebts(_ context.Context, userID uint) ([]models.Debt, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	var out []models.Debt
	for _, d := range m.debts {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memStore) LoadHistory(ctx context.Context, userID uint) (models.History, error) {
	txns, err := m.LoadTransactions(ctx, userID)
	if err != nil {
		return models.History{}, err
	}
	h := models.History{Transactions: txns}
	h.Goals, _ = m.LoadGoals(ctx, userID)
	h.Debts, _ = m.LoadDebts(ctx, userID)
	return h, nil
}

func (m *memStore) LoadBadgeCatalog(context.Context) ([]models.Badge, error) {
	return m.catalog, nil
}

func (m *memStore) LoadEarnedBadgeIDs(_ context.Context, userID uint) (map[uint]bool, error) {
	ids := make(map[uint]bool)
	for _, ub := range m.earned {
		if ub.UserID == userID {
			ids[ub.BadgeID] = true
		}
	}
	return ids, nil
}

func (m *memStore) LoadUserBadges(_ context.Context, userID uint) ([]models.UserBadge, error) {
	var out []models.UserBadge
	for _, ub := range m.earned {
		if ub.UserID == userID {
			out = append(out, ub)
		}
	}
	return out, nil
}

func (m *memStore) InsertUserBadges(_ context.Context, userID uint, badgeIDs []uint, earnedAt time.Time) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	existing, _ := m.LoadEarnedBadgeIDs(context.Background(), userID)
	for _, id := range badgeIDs {
		if existing[id] {
			continue
		}
		m.earned = append(m.earned, models.UserBadge{ID: m.id(), UserID: userID, BadgeID: id, EarnedAt: earnedAt})
	}
	return nil
}

func (m *memStore) CreateTransaction(_ context.Context, txn *models.Transaction) error {
	txn.ID = m.id()
	m.txns = append(m.txns, *txn)
	return nil
}

func (m *memStore) CreateTransactions(ctx context.Context, txns []models.Transaction) error {
	for i := range txns {
		if err := m.CreateTransaction(ctx, &txns[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStore) GetTransaction(_ context.Context, userID, id uint) (*models.Transaction, error) {
	for _, t := range m.txns {
		if t.ID == id && t.UserID == userID {
			txn := t
			return &txn, nil
		}
	}
	return nil, errNotFound
}

func (m *memStore) UpdateTransactionCategory(_ context.Context, txn *models.Transaction) error {
	for i := range m.txns {
		if m.txns[i].ID == txn.ID {
			m.txns[i].Category = txn.Category
		}
	}
	return nil
}

func (m *memStore) DeleteTransaction(_ context.Context, userID, id uint) error {
	for i, t := range m.txns {
		if t.ID == id && t.UserID == userID {
			m.txns = append(m.txns[:i], m.txns[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (m *memStore) CreateGoal(_ context.Context, goal *models.Goal) error {
	goal.ID = m.id()
	m.goals = append(m.goals, *goal)
	return nil
}

func (m *memStore) GetGoal(_ context.Context, userID, id uint) (*models.Goal, error) {
	for _, g := range m.goals {
		if g.ID == id && g.UserID == userID {
			goal := g
			return &goal, nil
		}
	}
	return nil, errNotFound
}

func (m *memStore) UpdateGoalProgress(_ context.Context, goal *models.Goal) error {
	for i := range m.goals {
		if m.goals[i].ID == goal.ID {
			m.goals[i].SavedAmount = goal.SavedAmount
			m.goals[i].IsCompleted = goal.IsCompleted
		}
	}
	return nil
}

func (m *memStore) DeleteGoal(_ context.Context, userID, id uint) error {
	for i, g := range m.goals {
		if g.ID == id && g.UserID == userID {
			m.goals = append(m.goals[:i], m.goals[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (m *memStore) CreateDebt(_ context.Context, debt *models.Debt) error {
	debt.ID = m.id()
	m.debts = append(m.debts, *debt)
	return nil
}

func (m *memStore) GetDebt(_ context.Context, userID, id uint) (*models.Debt, error) {
	for _, d := range m.debts {
		if d.ID == id && d.UserID == userID {
			debt := d
			return &debt, nil
		}
	}
	return nil, errNotFound
}

func (m *memStore) UpdateDebtBalance(_ context.Context, debt *models.Debt) error {
	for i := range m.debts {
		if m.debts[i].ID == debt.ID {
			m.debts[i].CurrentBalance = debt.CurrentBalance
		}
	}
	return nil
}

func (m *memStore) DeleteDebt(_ context.Context, userID, id uint) error {
	for i, d := range m.debts {
		if d.ID == id && d.UserID == userID {
			m.debts = append(m.debts[:i], m.debts[i+1:]...)
			return nil
		}
	}
	return errNotFound
}
