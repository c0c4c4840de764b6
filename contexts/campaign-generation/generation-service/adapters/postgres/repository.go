package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"adforge/contexts/campaign-generation/generation-service/domain/entities"
	domainerrors "adforge/contexts/campaign-generation/generation-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type sourceModel struct {
	SourceID  string    `gorm:"column:source_id;primaryKey"`
	ProjectID string    `gorm:"column:project_id;index"`
	InputType string    `gorm:"column:input_type"`
	URL       string    `gorm:"column:url"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sourceModel) TableName() string { return "sources" }

type campaignModel struct {
	CampaignID string    `gorm:"column:campaign_id;primaryKey"`
	ProjectID  string    `gorm:"column:project_id;index"`
	SourceID   string    `gorm:"column:source_id;index"`
	Name       string    `gorm:"column:name"`
	Objective  string    `gorm:"column:objective"`
	Platforms  []byte    `gorm:"column:platforms;type:jsonb"`
	Result     []byte    `gorm:"column:result;type:jsonb"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (campaignModel) TableName() string { return "campaigns" }

type generationLogModel struct {
	LogID            string    `gorm:"column:log_id;primaryKey"`
	UserID           string    `gorm:"column:user_id;index"`
	CampaignID       *string   `gorm:"column:campaign_id;index"`
	AgentName        string    `gorm:"column:agent_name"`
	RequestPayload   []byte    `gorm:"column:request_payload;type:jsonb"`
	ResponsePayload  []byte    `gorm:"column:response_payload;type:jsonb"`
	PromptTokens     int       `gorm:"column:prompt_tokens"`
	CompletionTokens int       `gorm:"column:completion_tokens"`
	TotalTokens      int       `gorm:"column:total_tokens"`
	EstimatedCost    float64   `gorm:"column:estimated_cost"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (generationLogModel) TableName() string { return "generation_logs" }

func (r *Repository) CreateSource(ctx context.Context, source entities.Source) error {
	row := sourceModel{
		SourceID:  source.SourceID,
		ProjectID: source.ProjectID,
		InputType: string(source.InputType),
		URL:       source.URL,
		Status:    string(source.Status),
		CreatedAt: source.CreatedAt,
		UpdatedAt: source.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidGenerationInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetSource(ctx context.Context, sourceID string) (entities.Source, error) {
	var row sourceModel
	err := r.db.WithContext(ctx).
		Where("source_id = ?", strings.TrimSpace(sourceID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Source{}, domainerrors.ErrSourceNotFound
		}
		return entities.Source{}, err
	}
	return sourceFromModel(row), nil
}

// UpdateSourceStatus is a conditional write: it only applies when the stored
// status still matches `from`, which keeps terminal states terminal under
// concurrent writers.
func (r *Repository) UpdateSourceStatus(ctx context.Context, sourceID string, from, to entities.SourceStatus, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&sourceModel{}).
		Where("source_id = ? AND status = ?", strings.TrimSpace(sourceID), string(from)).
		Updates(map[string]interface{}{
			"status":     string(to),
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidStatusTransition
	}
	return nil
}

func (r *Repository) ListSourcesByProject(ctx context.Context, projectID string) ([]entities.Source, error) {
	var rows []sourceModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", strings.TrimSpace(projectID)).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Source, 0, len(rows))
	for _, row := range rows {
		items = append(items, sourceFromModel(row))
	}
	return items, nil
}

func (r *Repository) ListStaleProcessingSources(ctx context.Context, olderThan time.Time, limit int) ([]entities.Source, error) {
	var rows []sourceModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", string(entities.SourceStatusProcessing), olderThan).
		Order("updated_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Source, 0, len(rows))
	for _, row := range rows {
		items = append(items, sourceFromModel(row))
	}
	return items, nil
}

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	platforms, err := json.Marshal(campaign.Platforms)
	if err != nil {
		return err
	}
	result, err := json.Marshal(campaign.Result)
	if err != nil {
		return err
	}
	row := campaignModel{
		CampaignID: campaign.CampaignID,
		ProjectID:  campaign.ProjectID,
		SourceID:   campaign.SourceID,
		Name:       campaign.Name,
		Objective:  campaign.Objective,
		Platforms:  platforms,
		Result:     result,
		CreatedAt:  campaign.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidGenerationInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return campaignFromModel(row)
}

func (r *Repository) ListCampaignsByProject(ctx context.Context, projectID string) ([]entities.Campaign, error) {
	var rows []campaignModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", strings.TrimSpace(projectID)).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Campaign, 0, len(rows))
	for _, row := range rows {
		item, err := campaignFromModel(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) CreateGenerationLog(ctx context.Context, log entities.GenerationLog) error {
	row := generationLogModel{
		LogID:            log.LogID,
		UserID:           log.UserID,
		CampaignID:       log.CampaignID,
		AgentName:        log.AgentName,
		RequestPayload:   log.RequestPayload,
		ResponsePayload:  log.ResponsePayload,
		PromptTokens:     log.PromptTokens,
		CompletionTokens: log.CompletionTokens,
		TotalTokens:      log.TotalTokens,
		EstimatedCost:    log.EstimatedCost,
		CreatedAt:        log.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListGenerationLogsByUser(ctx context.Context, userID string) ([]entities.GenerationLog, error) {
	var rows []generationLogModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.GenerationLog, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.GenerationLog{
			LogID:            row.LogID,
			UserID:           row.UserID,
			CampaignID:       row.CampaignID,
			AgentName:        row.AgentName,
			RequestPayload:   row.RequestPayload,
			ResponsePayload:  row.ResponsePayload,
			PromptTokens:     row.PromptTokens,
			CompletionTokens: row.CompletionTokens,
			TotalTokens:      row.TotalTokens,
			EstimatedCost:    row.EstimatedCost,
			CreatedAt:        row.CreatedAt,
		})
	}
	return items, nil
}

func sourceFromModel(row sourceModel) entities.Source {
	return entities.Source{
		SourceID:  row.SourceID,
		ProjectID: row.ProjectID,
		InputType: entities.SourceInputType(row.InputType),
		URL:       row.URL,
		Status:    entities.SourceStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func campaignFromModel(row campaignModel) (entities.Campaign, error) {
	var platforms []string
	if len(row.Platforms) > 0 {
		if err := json.Unmarshal(row.Platforms, &platforms); err != nil {
			return entities.Campaign{}, err
		}
	}
	var result entities.GenerationResult
	if len(row.Result) > 0 {
		if err := json.Unmarshal(row.Result, &result); err != nil {
			return entities.Campaign{}, err
		}
	}
	return entities.Campaign{
		CampaignID: row.CampaignID,
		ProjectID:  row.ProjectID,
		SourceID:   row.SourceID,
		Name:       row.Name,
		Objective:  row.Objective,
		Platforms:  platforms,
		Result:     result,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
