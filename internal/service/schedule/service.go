package schedule

import (
	"context"
	"fmt"

	"github.com/glossbook/scheduling-service/internal/service/schedule/models"
)

// Service сервис управления еженедельным шаблоном доступности
type Service struct {
	windowRepo WindowRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса шаблона
func NewService(windowRepo WindowRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		windowRepo: windowRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetTemplate возвращает текущий еженедельный шаблон
func (s *Service) GetTemplate(ctx context.Context) (*models.TemplateResponse, error) {
	s.logger.Info("GetTemplate: fetching availability template")

	windows, err := s.windowRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("GetTemplate: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetTemplate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTemplate: successfully fetched %d windows", len(windows))
	return models.FromDomainWindows(windows), nil
}

// ReplaceTemplate заменяет шаблон целиком новым набором окон
// Замена не трогает существующие записи: они остаются в силе, даже если
// новый шаблон больше не покрывает их время
func (s *Service) ReplaceTemplate(ctx context.Context, req *models.ReplaceTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("ReplaceTemplate: replacing template with %d windows", len(req.Windows))

	windows := req.ToDomainWindows()
	for i, w := range windows {
		if err := w.Validate(); err != nil {
			s.logger.Warn("ReplaceTemplate: invalid window at index %d: %v", i, err)
			return nil, fmt.Errorf("%w: window %d: %v", ErrInvalidInput, i, err)
		}
	}

	var saved *models.TemplateResponse
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		replaced, err := s.windowRepo.ReplaceAll(txCtx, windows)
		if err != nil {
			return fmt.Errorf("%w: ReplaceTemplate - repository error: %v", ErrInternal, err)
		}
		saved = models.FromDomainWindows(replaced)
		return nil
	})
	if err != nil {
		s.logger.Error("ReplaceTemplate: transaction failed: %v", err)
		return nil, err
	}

	s.logger.Info("ReplaceTemplate: template replaced, %d windows saved", len(saved.Windows))
	return saved, nil
}
