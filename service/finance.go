package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fintrack/badges"
	"fintrack/categorizer"
	"fintrack/ingest"
	"fintrack/insights"
	"fintrack/logger"
	"fintrack/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrAwardFailed 徽章写入失败，整批回滚
	ErrAwardFailed  = errors.New("badge award failed")
	ErrInvalidInput = errors.New("invalid input")
)

// Store Finance 依赖的持久化接口，由 database.Store 实现
type Store interface {
	EnsureUser(ctx context.Context, userID uint) error
	GetUser(ctx context.Context, userID uint) (*models.User, error)
	LoadTransactions(ctx context.Context, userID uint) ([]models.Transaction, error)
	LoadGoals(ctx context.Context, userID uint) ([]models.Goal, error)
	LoadDebts(ctx context.Context, userID uint) ([]models.Debt, error)
	LoadHistory(ctx context.Context, userID uint) (models.History, error)
	LoadBadgeCatalog(ctx context.Context) ([]models.Badge, error)
	LoadEarnedBadgeIDs(ctx context.Context, userID uint) (map[uint]bool, error)
	LoadUserBadges(ctx context.Context, userID uint) ([]models.UserBadge, error)
	InsertUserBadges(ctx context.Context, userID uint, badgeIDs []uint, earnedAt time.Time) error
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	CreateTransactions(ctx context.Context, txns []models.Transaction) error
	GetTransaction(ctx context.Context, userID, id uint) (*models.Transaction, error)
	UpdateTransactionCategory(ctx context.Context, txn *models.Transaction) error
	DeleteTransaction(ctx context.Context, userID, id uint) error
	CreateGoal(ctx context.Context, goal *models.Goal) error
	GetGoal(ctx context.Context, userID, id uint) (*models.Goal, error)
	UpdateGoalProgress(ctx context.Context, goal *models.Goal) error
	DeleteGoal(ctx context.Context, userID, id uint) error
	CreateDebt(ctx context.Context, debt *models.Debt) error
	GetDebt(ctx context.Context, userID, id uint) (*models.Debt, error)
	UpdateDebtBalance(ctx context.Context, debt *models.Debt) error
	DeleteDebt(ctx context.Context, userID, id uint) error
}

// BadgeNotifier 新徽章通知
type BadgeNotifier interface {
	NotifyBadges(user models.User, earned []models.Badge) error
}

// Finance 按用户组织的核心业务入口：加载快照、调用分类/徽章/洞察/评分，并负责写入 UserBadge
type Finance struct {
	store       Store
	categorizer *categorizer.Categorizer
	evaluator   *badges.Evaluator
	generator   *insights.Generator
	scorer      *insights.Scorer
	notifier    BadgeNotifier
	now         func() time.Time
}

// Option Finance 配置项
type Option func(*Finance)

// WithClock 注入时钟，同时作用于徽章、洞察和评分
func WithClock(now func() time.Time) Option {
	return func(f *Finance) {
		if now != nil {
			f.now = now
		}
	}
}

// WithCategorizer 指定分类器（例如加载了自定义规则的）
func WithCategorizer(c *categorizer.Categorizer) Option {
	return func(f *Finance) {
		f.categorizer = c
	}
}

// WithNotifier 获得新徽章时发送通知
func WithNotifier(n BadgeNotifier) Option {
	return func(f *Finance) {
		f.notifier = n
	}
}

// NewFinance 创建 Finance
func NewFinance(store Store, opts ...Option) *Finance {
	f := &Finance{store: store, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	if f.categorizer == nil {
		f.categorizer = categorizer.New(nil)
	}
	f.evaluator = badges.NewEvaluator(badges.WithClock(f.now))
	f.generator = insights.NewGenerator(insights.WithClock(f.now))
	f.scorer = insights.NewScorer(insights.WithClock(f.now))
	return f
}

// Categorizer 返回使用的分类器
func (f *Finance) Categorizer() *categorizer.Categorizer {
	return f.categorizer
}

// Categorize 自动分类
func (f *Finance) Categorize(description string) string {
	return f.categorizer.Categorize(description)
}

// Suggest 分类建议，最多 5 个
func (f *Finance) Suggest(description string) []string {
	return f.categorizer.Suggest(description)
}

// Categories 所有类别（含 Other）
func (f *Finance) Categories() []string {
	return f.categorizer.Categories()
}

// CheckAndAwardBadges 评估所有未获得的徽章，新获得的在一个事务内写入
// 返回按目录顺序排列的新徽章名称；写入失败时返回 ErrAwardFailed 且不返回任何名称
func (f *Finance) CheckAndAwardBadges(ctx context.Context, userID uint) ([]string, error) {
	log := logger.FromContext(ctx).With().Uint("user_id", userID).Logger()

	catalog, err := f.store.LoadBadgeCatalog(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := f.store.LoadEarnedBadgeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	h, err := f.store.LoadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	var ids []uint
	var newly []models.Badge
	for _, b := range catalog {
		if earned[b.ID] {
			continue
		}
		if f.evaluator.CheckKey(b.Condition, h) {
			ids = append(ids, b.ID)
			newly = append(newly, b)
		}
	}
	if len(ids) == 0 {
		return []string{}, nil
	}

	if err := f.store.InsertUserBadges(ctx, userID, ids, f.now()); err != nil {
		log.Error().Err(err).Int("badges", len(ids)).Msg("写入徽章失败，已回滚")
		return nil, fmt.Errorf("%w: %w", ErrAwardFailed, err)
	}

	names := make([]string, len(newly))
	for i, b := range newly {
		names[i] = b.Name
	}
	log.Info().Strs("badges", names).Msg("获得新徽章")
	f.notify(ctx, userID, newly)
	return names, nil
}

func (f *Finance) notify(ctx context.Context, userID uint, earned []models.Badge) {
	if f.notifier == nil {
		return
	}
	log := logger.FromContext(ctx)
	user, err := f.store.GetUser(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("查询用户失败，跳过徽章通知")
		return
	}
	if user.Email == "" {
		return
	}
	if err := f.notifier.NotifyBadges(*user, earned); err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("发送徽章通知失败")
	}
}

// sweep 写操作之后执行徽章检查，失败只记录日志，不影响已完成的写操作
func (f *Finance) sweep(ctx context.Context, userID uint) []string {
	names, err := f.CheckAndAwardBadges(ctx, userID)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Error().Err(err).Uint("user_id", userID).Msg("徽章检查失败")
		return nil
	}
	return names
}

// BadgeProgress 每个未获得徽章的进度（0-100），不会授予徽章
func (f *Finance) BadgeProgress(ctx context.Context, userID uint) (map[string]int, error) {
	catalog, err := f.store.LoadBadgeCatalog(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := f.store.LoadEarnedBadgeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	h, err := f.store.LoadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := make(map[string]int)
	for _, b := range catalog {
		if !earned[b.ID] {
			progress[b.Name] = f.evaluator.ProgressKey(b.Condition, h)
		}
	}
	return progress, nil
}

// UserBadges 用户已获得的徽章
func (f *Finance) UserBadges(ctx context.Context, userID uint) ([]models.UserBadge, error) {
	return f.store.LoadUserBadges(ctx, userID)
}

// GenerateInsights 理财洞察，最多 8 条
func (f *Finance) GenerateInsights(ctx context.Context, userID uint) ([]string, error) {
	h, err := f.store.LoadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return f.generator.Generate(h), nil
}

// FinancialHealthScore 财务健康评分
func (f *Finance) FinancialHealthScore(ctx context.Context, userID uint) (int, error) {
	h, err := f.store.LoadHistory(ctx, userID)
	if err != nil {
		return 0, err
	}
	return f.scorer.Score(h), nil
}

// PredictSpending 预测下月支出，category 为空表示全部；数据不足时 ok 为 false
func (f *Finance) PredictSpending(ctx context.Context, userID uint, category string) (amount float64, ok bool, err error) {
	h, err := f.store.LoadHistory(ctx, userID)
	if err != nil {
		return 0, false, err
	}
	amount, ok = insights.PredictSpending(h, category)
	return amount, ok, nil
}

// SpendingTrends 每月收支
func (f *Finance) SpendingTrends(ctx context.Context, userID uint) ([]insights.MonthTrend, error) {
	h, err := f.store.LoadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return insights.SpendingTrends(h), nil
}

// CategoryInsights 各支出类别统计
func (f *Finance) CategoryInsights(ctx context.Context, userID uint) (map[string]insights.CategoryInsight, error) {
	h, err := f.store.LoadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return insights.CategoryInsights(h), nil
}

// Summary 收支汇总
func (f *Finance) Summary(ctx context.Context, userID uint) (insights.Summary, error) {
	h, err := f.store.LoadHistory(ctx, userID)
	if err != nil {
		return insights.Summary{}, err
	}
	return insights.Summarize(h), nil
}

// ListTransactions 用户全部交易
func (f *Finance) ListTransactions(ctx context.Context, userID uint) ([]models.Transaction, error) {
	return f.store.LoadTransactions(ctx, userID)
}

// AddTransaction 记录一笔交易，未指定类别时自动分类，之后执行徽章检查
func (f *Finance) AddTransaction(ctx context.Context, txn *models.Transaction) ([]string, error) {
	if txn.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if txn.Category == "" {
		txn.Category = f.categorizer.Categorize(txn.Description)
	}
	txn.Date = models.DayOf(txn.Date)
	if err := f.store.EnsureUser(ctx, txn.UserID); err != nil {
		return nil, err
	}
	if err := f.store.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return f.sweep(ctx, txn.UserID), nil
}

// DeleteTransaction 删除交易
func (f *Finance) DeleteTransaction(ctx context.Context, userID, id uint) error {
	return f.store.DeleteTransaction(ctx, userID, id)
}

// RecategorizeTransaction 用户修正交易类别，并把修正反馈给分类器学习
// 返回修改后的交易与新学到的关键词数
func (f *Finance) RecategorizeTransaction(ctx context.Context, userID, id uint, category string) (*models.Transaction, int, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, 0, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	txn, err := f.store.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, 0, err
	}
	predicted := f.categorizer.Categorize(txn.Description)
	txn.Category = category
	if err := f.store.UpdateTransactionCategory(ctx, txn); err != nil {
		return nil, 0, err
	}

	learned := f.categorizer.Learn([]categorizer.Feedback{{
		Description: txn.Description,
		Predicted:   predicted,
		Actual:      category,
	}})
	if learned > 0 {
		log := logger.FromContext(ctx)
		log.Info().
			Uint("transaction_id", txn.ID).
			Str("category", category).
			Int("keywords", learned).
			Msg("分类规则已更新")
	}
	return txn, learned, nil
}

// CategorizationReport 自动分类与用户实际类别的对比，以及各类别用量
type CategorizationReport struct {
	Accuracy   categorizer.Accuracy   `json:"accuracy"`
	Statistics categorizer.Statistics `json:"statistics"`
}

// CategorizationStats 用当前规则重新分类用户交易，与已保存类别比较
func (f *Finance) CategorizationStats(ctx context.Context, userID uint) (*CategorizationReport, error) {
	txns, err := f.store.LoadTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	samples := make([]categorizer.Sample, len(txns))
	for i, t := range txns {
		samples[i] = categorizer.Sample{Description: t.Description, Category: t.Category}
	}
	return &CategorizationReport{
		Accuracy:   f.categorizer.Accuracy(samples),
		Statistics: categorizer.CategoryStatistics(txns),
	}, nil
}

// ImportResult 导入结果
type ImportResult struct {
	Imported  int      `json:"imported"`
	Errors    []string `json:"errors"`
	NewBadges []string `json:"new_badges"`
}

// ImportTransactions 导入 CSV 或 OFX 文件，逐行错误不会中断导入
func (f *Finance) ImportTransactions(ctx context.Context, userID uint, format ingest.Format, r io.Reader) (*ImportResult, error) {
	var parsed *ingest.Result
	var err error
	switch format {
	case ingest.FormatCSV:
		parsed, err = ingest.ParseCSV(r, userID, f.categorizer)
	case ingest.FormatOFX:
		parsed, err = ingest.ParseOFX(r, userID, f.categorizer)
	default:
		return nil, fmt.Errorf("%w: %s", ingest.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: parsed.Errors}
	if len(parsed.Transactions) == 0 {
		return result, nil
	}
	if err := f.store.EnsureUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := f.store.CreateTransactions(ctx, parsed.Transactions); err != nil {
		return nil, err
	}
	result.Imported = len(parsed.Transactions)
	result.NewBadges = f.sweep(ctx, userID)

	log := logger.FromContext(ctx)
	log.Info().
		Uint("user_id", userID).
		Int("imported", result.Imported).
		Int("errors", len(result.Errors)).
		Msg("交易导入完成")
	return result, nil
}

// CreateGoal 新建储蓄目标
func (f *Finance) CreateGoal(ctx context.Context, goal *models.Goal) ([]string, error) {
	if err := goal.Validate(models.DayOf(f.now())); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := goal.ApplySaved(goal.SavedAmount); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := f.store.EnsureUser(ctx, goal.UserID); err != nil {
		return nil, err
	}
	if err := f.store.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return f.sweep(ctx, goal.UserID), nil
}

// UpdateGoalSaved 更新目标已存金额，达到目标时标记完成
func (f *Finance) UpdateGoalSaved(ctx context.Context, userID, id uint, saved decimal.Decimal) (*models.Goal, []string, error) {
	goal, err := f.store.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	if err := goal.ApplySaved(saved); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := f.store.UpdateGoalProgress(ctx, goal); err != nil {
		return nil, nil, err
	}
	return goal, f.sweep(ctx, userID), nil
}

// ListGoals 用户全部储蓄目标
func (f *Finance) ListGoals(ctx context.Context, userID uint) ([]models.Goal, error) {
	return f.store.LoadGoals(ctx, userID)
}

// DeleteGoal 删除目标，已获得的徽章不会收回
func (f *Finance) DeleteGoal(ctx context.Context, userID, id uint) error {
	return f.store.DeleteGoal(ctx, userID, id)
}

// CreateDebt 新建负债
func (f *Finance) CreateDebt(ctx context.Context, debt *models.Debt) ([]string, error) {
	if err := debt.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := f.store.EnsureUser(ctx, debt.UserID); err != nil {
		return nil, err
	}
	if err := f.store.CreateDebt(ctx, debt); err != nil {
		return nil, err
	}
	return f.sweep(ctx, debt.UserID), nil
}

// UpdateDebtBalance 更新负债余额
func (f *Finance) UpdateDebtBalance(ctx context.Context, userID, id uint, balance decimal.Decimal) (*models.Debt, []string, error) {
	debt, err := f.store.GetDebt(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	if err := debt.ValidateBalance(balance); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	debt.CurrentBalance = balance
	if err := f.store.UpdateDebtBalance(ctx, debt); err != nil {
		return nil, nil, err
	}
	return debt, f.sweep(ctx, userID), nil
}

// ListDebts 用户全部负债
func (f *Finance) ListDebts(ctx context.Context, userID uint) ([]models.Debt, error) {
	return f.store.LoadDebts(ctx, userID)
}

// DeleteDebt 删除负债，已获得的徽章不会收回
func (f *Finance) DeleteDebt(ctx context.Context, userID, id uint) error {
	return f.store.DeleteDebt(ctx, userID, id)
}
