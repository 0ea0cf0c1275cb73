package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

// Store 基于 gorm 的持久化层，所有方法都带 context
type Store struct {
	db *gorm.DB
}

// NewStore 创建 Store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB 返回底层连接
func (s *Store) DB() *gorm.DB {
	return s.db
}

// EnsureUser 用户不存在时创建一个占位用户
func (s *Store) EnsureUser(ctx context.Context, userID uint) error {
	user := models.User{ID: userID}
	err := s.db.WithContext(ctx).
		Where(models.User{ID: userID}).
		Attrs(models.User{Username: fmt.Sprintf("user%d", userID)}).
		FirstOrCreate(&user).Error
	if err != nil {
		return fmt.Errorf("ensure user %d: %w", userID, err)
	}
	return nil
}

// GetUser 查询用户
func (s *Store) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// LoadTransactions 按日期升序加载用户全部交易
func (s *Store) LoadTransactions(ctx context.Context, userID uint) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("date, id").Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return txns, nil
}

// LoadGoals 加载用户的储蓄目标
func (s *Store) LoadGoals(ctx context.Context, userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	return goals, nil
}

// LoadDebts 加载用户的负债
func (s *Store) LoadDebts(ctx context.Context, userID uint) ([]models.Debt, error) {
	var debts []models.Debt
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&debts).Error; err != nil {
		return nil, fmt.Errorf("load debts: %w", err)
	}
	return debts, nil
}

// LoadHistory 一次性加载交易、目标、负债
func (s *Store) LoadHistory(ctx context.Context, userID uint) (models.History, error) {
	var h models.History
	var err error
	if h.Transactions, err = s.LoadTransactions(ctx, userID); err != nil {
		return models.History{}, err
	}
	if h.Goals, err = s.LoadGoals(ctx, userID); err != nil {
		return models.History{}, err
	}
	if h.Debts, err = s.LoadDebts(ctx, userID); err != nil {
		return models.History{}, err
	}
	return h, nil
}

// LoadBadgeCatalog 按 id 顺序加载徽章目录
func (s *Store) LoadBadgeCatalog(ctx context.Context) ([]models.Badge, error) {
	var catalog []models.Badge
	if err := s.db.WithContext(ctx).Order("id").Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("load badge catalog: %w", err)
	}
	return catalog, nil
}

// LoadEarnedBadgeIDs 用户已获得的徽章 id 集合
func (s *Store) LoadEarnedBadgeIDs(ctx context.Context, userID uint) (map[uint]bool, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&models.UserBadge{}).
		Where("user_id = ?", userID).
		Pluck("badge_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("load earned badges: %w", err)
	}
	earned := make(map[uint]bool, len(ids))
	for _, id := range ids {
		earned[id] = true
	}
	return earned, nil
}

// LoadUserBadges 用户已获得的徽章，按获得时间排序
func (s *Store) LoadUserBadges(ctx context.Context, userID uint) ([]models.UserBadge, error) {
	var earned []models.UserBadge
	err := s.db.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("earned_at, id").
		Find(&earned).Error
	if err != nil {
		return nil, fmt.Errorf("load user badges: %w", err)
	}
	return earned, nil
}

// InsertUserBadges 在一个事务内写入新获得的徽章
// (user_id, badge_id) 唯一索引冲突时跳过，任何错误都会整体回滚
func (s *Store) InsertUserBadges(ctx context.Context, userID uint, badgeIDs []uint, earnedAt time.Time) error {
	if len(badgeIDs) == 0 {
		return nil
	}
	rows := make([]models.UserBadge, 0, len(badgeIDs))
	for _, id := range badgeIDs {
		rows = append(rows, models.UserBadge{UserID: userID, BadgeID: id, EarnedAt: earnedAt})
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			return fmt.Errorf("insert user badges: %w", err)
		}
		return nil
	})
}

// CreateTransactions 批量写入交易，全部成功或全部回滚
func (s *Store) CreateTransactions(ctx context.Context, txns []models.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&txns, 100).Error; err != nil {
			return fmt.Errorf("create transactions: %w", err)
		}
		return nil
	})
}

// CreateTransaction 写入单条交易
func (s *Store) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if err := s.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// DeleteTransaction 删除用户的一条交易
func (s *Store) DeleteTransaction(ctx context.Context, userID, id uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetTransaction 查询用户的某笔交易
func (s *Store) GetTransaction(ctx context.Context, userID, id uint) (*models.Transaction, error) {
	var txn models.Transaction
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&txn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &txn, nil
}

// UpdateTransactionCategory 修改交易类别
func (s *Store) UpdateTransactionCategory(ctx context.Context, txn *models.Transaction) error {
	if err := s.db.WithContext(ctx).Model(txn).Update("category", txn.Category).Error; err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// CreateGoal 新建储蓄目标
func (s *Store) CreateGoal(ctx context.Context, goal *models.Goal) error {
	if err := s.db.WithContext(ctx).Create(goal).Error; err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// GetGoal 查询用户的某个目标
func (s *Store) GetGoal(ctx context.Context, userID, id uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &goal, nil
}

// UpdateGoalProgress 保存已存金额与完成状态
func (s *Store) UpdateGoalProgress(ctx context.Context, goal *models.Goal) error {
	err := s.db.WithContext(ctx).Model(goal).Updates(map[string]interface{}{
		"saved_amount": goal.SavedAmount,
		"is_completed": goal.IsCompleted,
	}).Error
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	return nil
}

// DeleteGoal 删除用户的一个目标
func (s *Store) DeleteGoal(ctx context.Context, userID, id uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Goal{})
	if result.Error != nil {
		return fmt.Errorf("delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateDebt 新建负债
func (s *Store) CreateDebt(ctx context.Context, debt *models.Debt) error {
	if err := s.db.WithContext(ctx).Create(debt).Error; err != nil {
		return fmt.Errorf("create debt: %w", err)
	}
	return nil
}

// GetDebt 查询用户的某笔负债
func (s *Store) GetDebt(ctx context.Context, userID, id uint) (*models.Debt, error) {
	var debt models.Debt
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&debt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get debt: %w", err)
	}
	return &debt, nil
}

// UpdateDebtBalance 保存当前余额
func (s *Store) UpdateDebtBalance(ctx context.Context, debt *models.Debt) error {
	if err := s.db.WithContext(ctx).Model(debt).Update("current_balance", debt.CurrentBalance).Error; err != nil {
		return fmt.Errorf("update debt: %w", err)
	}
	return nil
}

// DeleteDebt 删除用户的一笔负债
func (s *Store) DeleteDebt(ctx context.Context, userID, id uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Debt{})
	if result.Error != nil {
		return fmt.Errorf("delete debt: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SeedBadges 写入目录中尚不存在（按名称）的徽章，可重复执行
func (s *Store) SeedBadges(ctx context.Context, catalog []models.Badge) (int, error) {
	var existing []string
	if err := s.db.WithContext(ctx).Model(&models.Badge{}).Pluck("name", &existing).Error; err != nil {
		return 0, fmt.Errorf("load badge names: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
	}

	var missing []models.Badge
	for _, b := range catalog {
		if !present[b.Name] {
			missing = append(missing, b)
			present[b.Name] = true
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}
	if err := s.db.WithContext(ctx).Create(&missing).Error; err != nil {
		return 0, fmt.Errorf("seed badges: %w", err)
	}
	return len(missing), nil
}
