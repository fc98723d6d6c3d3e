package services

import (
	"errors"
	"math"

	"villa/constants"
	"villa/dto"
	"villa/models"
	"villa/services/logger"
	"villa/validator"

	apperrors "villa/errors"

	"gorm.io/gorm"
)

// RatePlanService xử lý nghiệp vụ gói giá: danh sách có lọc và phân trang,
// CRUD và đổi trạng thái
type RatePlanService struct {
	db     *gorm.DB
	logger logger.Logger
}

// RatePlanServiceOptions là tham số khởi tạo RatePlanService
type RatePlanServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// NewRatePlanService tạo RatePlanService mới
func NewRatePlanService(opts RatePlanServiceOptions) *RatePlanService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RatePlanService{
		db:     opts.DB,
		logger: l,
	}
}

// List trả về danh sách gói giá theo query descriptor: search theo tên,
// lọc loại, trạng thái, phòng áp dụng, phân trang offset/limit. Metadata
// total và totalPages tính từ COUNT phía server
func (s *RatePlanService) List(req dto.ListRatePlansRequest) ([]models.RatePlan, int64, int, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 10
	}

	tx := s.db.Model(&models.RatePlan{})

	if req.Search != "" {
		tx = tx.Where("name ILIKE ?", "%"+req.Search+"%")
	}

	if req.RatePlanType != "" && req.RatePlanType != "all" && req.RatePlanType != constants.RatePlanTypeAll {
		tx = tx.Where("rate_plan_type = ?", req.RatePlanType)
	}

	if req.RatePlanStatus != "" && req.RatePlanStatus != "all" {
		status, ok := constants.CanonicalRatePlanStatus(req.RatePlanStatus)
		if !ok {
			return nil, 0, 0, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Trạng thái gói giá không hợp lệ", nil)
		}
		tx = tx.Where("rate_plan_status = ?", status)
	}

	if len(req.RoomIDs) > 0 {
		tx = tx.
			Joins("JOIN rate_plan_rooms ON rate_plan_rooms.rate_plan_rate_plan_id = rate_plans.rate_plan_id").
			Where("rate_plan_rooms.room_room_id IN ?", req.RoomIDs).
			Distinct("rate_plans.*")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		s.logger.Error("Lỗi khi đếm gói giá: %v", err)
		return nil, 0, 0, err
	}

	var plans []models.RatePlan
	err := tx.Preload("ApplicableRooms").
		Order("updated_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&plans).Error
	if err != nil {
		s.logger.Error("Lỗi khi lấy danh sách gói giá: %v", err)
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return plans, total, totalPages, nil
}

// ListAll trả về toàn bộ gói giá, dùng cho endpoint legacy không phân trang
func (s *RatePlanService) ListAll() ([]models.RatePlan, error) {
	var plans []models.RatePlan
	if err := s.db.Preload("ApplicableRooms").Order("updated_at desc").Find(&plans).Error; err != nil {
		s.logger.Error("Lỗi khi lấy toàn bộ gói giá: %v", err)
		return nil, err
	}
	return plans, nil
}

// GetByID lấy chi tiết một gói giá kèm danh sách phòng áp dụng
func (s *RatePlanService) GetByID(id uint) (*models.RatePlan, error) {
	var plan models.RatePlan
	if err := s.db.Preload("ApplicableRooms").First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRatePlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// Create tạo gói giá mới từ form. Danh sách id phòng được resolve sang
// entity phòng phía server
func (s *RatePlanService) Create(form dto.RatePlanForm) (*models.RatePlan, error) {
	plan, err := form.ToModel()
	if err != nil {
		return nil, err
	}

	if err := validator.ValidateRatePlan(&plan); err != nil {
		return nil, err
	}

	rooms, err := s.resolveRooms(form.ApplicableRooms)
	if err != nil {
		return nil, err
	}
	plan.ApplicableRooms = rooms

	if err := s.db.Create(&plan).Error; err != nil {
		s.logger.Error("Lỗi khi tạo gói giá: %v", err)
		return nil, err
	}

	s.logger.Info("Đã tạo gói giá %d (%s)", plan.RatePlanID, plan.Name)
	return &plan, nil
}

// Update cập nhật gói giá theo id từ form
func (s *RatePlanService) Update(id uint, form dto.RatePlanForm) (*models.RatePlan, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	plan, err := form.ToModel()
	if err != nil {
		return nil, err
	}
	plan.RatePlanID = existing.RatePlanID
	plan.CreatedAt = existing.CreatedAt

	if err := validator.ValidateRatePlan(&plan); err != nil {
		return nil, err
	}

	rooms, err := s.resolveRooms(form.ApplicableRooms)
	if err != nil {
		return nil, err
	}

	if err := s.db.Omit("ApplicableRooms").Save(&plan).Error; err != nil {
		s.logger.Error("Lỗi khi cập nhật gói giá %d: %v", id, err)
		return nil, err
	}
	if err := s.db.Model(&plan).Association("ApplicableRooms").Replace(rooms); err != nil {
		s.logger.Error("Lỗi khi cập nhật phòng áp dụng của gói giá %d: %v", id, err)
		return nil, err
	}

	plan.ApplicableRooms = rooms
	return &plan, nil
}

// ChangeStatus đổi trạng thái Active/Inactive của gói giá
func (s *RatePlanService) ChangeStatus(id uint, newStatus string) (*models.RatePlan, error) {
	status, ok := constants.CanonicalRatePlanStatus(newStatus)
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Trạng thái gói giá không hợp lệ", nil)
	}

	plan, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	plan.RatePlanStatus = status
	plan.IsActive = status == constants.RatePlanStatusActive

	if err := s.db.Omit("ApplicableRooms").Save(plan).Error; err != nil {
		s.logger.Error("Lỗi khi đổi trạng thái gói giá %d: %v", id, err)
		return nil, err
	}
	return plan, nil
}

// Delete xóa gói giá và liên kết phòng áp dụng
func (s *RatePlanService) Delete(id uint) error {
	plan, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Model(plan).Association("ApplicableRooms").Clear(); err != nil {
		return err
	}
	if err := s.db.Delete(plan).Error; err != nil {
		s.logger.Error("Lỗi khi xóa gói giá %d: %v", id, err)
		return err
	}

	s.logger.Info("Đã xóa gói giá %d", id)
	return nil
}

// resolveRooms đổi danh sách id phòng thành entity, báo lỗi khi có id không tồn tại
func (s *RatePlanService) resolveRooms(roomIDs []uint) ([]models.Room, error) {
	if len(roomIDs) == 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Phải chọn ít nhất một phòng áp dụng", nil)
	}

	var rooms []models.Room
	if err := s.db.Where("room_id IN ?", roomIDs).Find(&rooms).Error; err != nil {
		return nil, err
	}
	if len(rooms) != len(roomIDs) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Có phòng áp dụng không tồn tại", nil)
	}
	return rooms, nil
}
