package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/supply-agent/internal/request/domain"
)

type GormRequestRepository struct {
	db *gorm.DB
}

func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

func (r *GormRequestRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Request{}, &domain.Scenario{})
}

func (r *GormRequestRepository) FindByID(id uint) (*domain.Request, error) {
	var request domain.Request
	err := r.db.First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *GormRequestRepository) FindByIDWithScenarios(id uint) (*domain.Request, error) {
	var request domain.Request
	err := r.db.
		Preload("Scenarios", func(db *gorm.DB) *gorm.DB {
			return db.Order("scenarios.created_at DESC")
		}).
		First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *GormRequestRepository) FindAll(limit, offset int) ([]domain.Request, error) {
	var requests []domain.Request
	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// GormScenarioRepository persists simulation outcomes. Scenario rows are
// append-only; nothing here updates or deletes.
type GormScenarioRepository struct {
	db *gorm.DB
}

func NewGormScenarioRepository(db *gorm.DB) *GormScenarioRepository {
	return &GormScenarioRepository{db: db}
}

// RecordOutcome persists a new request together with its first scenario in
// one transaction. A failure on either insert rolls both back, so no partial
// outcome is ever visible.
func (r *GormScenarioRepository) RecordOutcome(request *domain.Request, scenario *domain.Scenario) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if request.ID == 0 {
			if err := tx.Create(request).Error; err != nil {
				return fmt.Errorf("failed to create request: %w", err)
			}
		}
		scenario.RequestID = request.ID
		if err := tx.Create(scenario).Error; err != nil {
			return fmt.Errorf("failed to create scenario: %w", err)
		}
		return nil
	})
}

// AppendScenario adds a fresh simulation outcome to an existing request
func (r *GormScenarioRepository) AppendScenario(scenario *domain.Scenario) error {
	if scenario.RequestID == 0 {
		return fmt.Errorf("%w: scenario missing request reference", domain.ErrInvalidInput)
	}
	return r.db.Create(scenario).Error
}

func (r *GormScenarioRepository) FindByScenarioID(scenarioID string) (*domain.Scenario, error) {
	var scenario domain.Scenario
	err := r.db.Where("scenario_id = ?", scenarioID).First(&scenario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (r *GormScenarioRepository) FindByRequestID(requestID uint) ([]domain.Scenario, error) {
	var scenarios []domain.Scenario
	err := r.db.Where("request_id = ?", requestID).Order("created_at DESC").Find(&scenarios).Error
	return scenarios, err
}

func (r *GormScenarioRepository) FindAll(limit, offset int) ([]domain.Scenario, error) {
	var scenarios []domain.Scenario
	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&scenarios).Error
	return scenarios, err
}

func (r *GormScenarioRepository) CountByClassification() (map[string]int64, error) {
	type row struct {
		Classification string
		Count          int64
	}
	var rows []row
	err := r.db.Model(&domain.Scenario{}).
		Select("classification, count(*) as count").
		Group("classification").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Classification] = r.Count
	}
	return counts, nil
}

// SumOpenShortfall totals the shortfall across the latest scenario of each
// request. Superseded scenarios are ignored, so a re-simulation that clears a
// shortfall removes it from the total.
func (r *GormScenarioRepository) SumOpenShortfall() (int64, error) {
	var total int64
	err := r.db.Raw(`
		SELECT COALESCE(SUM(s.shortfall), 0)
		FROM scenarios s
		JOIN (
			SELECT request_id, MAX(id) AS latest_id
			FROM scenarios
			GROUP BY request_id
		) latest ON s.id = latest.latest_id
		WHERE s.shortfall > 0`).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
