package services

import (
	"context"
	"encoding/json"
	"time"

	"villa/dto"
	"villa/errors"
	"villa/wizard"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TTL của phiên wizard: bản nháp chỉ sống trong phiên làm việc,
// không ghi vào cơ sở dữ liệu
const WizardSessionTTL = 30 * time.Minute

// RatePlanWizardSession là phiên tạo gói giá đang dở dang, lưu trong Redis
type RatePlanWizardSession struct {
	SessionID string           `json:"sessionId"`
	Draft     dto.RatePlanForm `json:"draft"`
	ActiveTab string           `json:"activeTab"`
}

func wizardKey(sessionID string) string {
	return "wizard:rate-plan:" + sessionID
}

// Navigator dựng lại navigator của phiên từ tab đang mở
func (s *RatePlanWizardSession) Navigator() *wizard.Navigator {
	nav := wizard.NewNavigator(wizard.RatePlanTabs, func(tab string) bool {
		return wizard.CanProceedRatePlan(tab, s.Draft)
	}, nil)
	nav.SetActiveTab(s.ActiveTab)
	return nav
}

// Progress trả về phần trăm tiến độ của phiên
func (s *RatePlanWizardSession) Progress() float64 {
	return s.Navigator().Progress()
}

// StartRatePlanWizard mở phiên wizard mới với bản nháp mặc định
func StartRatePlanWizard(ctx context.Context, rdb *redis.Client) (*RatePlanWizardSession, error) {
	session := &RatePlanWizardSession{
		SessionID: uuid.NewString(),
		Draft:     wizard.NewRatePlanDraft(),
		ActiveTab: wizard.RatePlanTabs[0],
	}
	if err := SaveRatePlanWizard(ctx, rdb, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetRatePlanWizard lấy phiên wizard theo id, trả ErrSessionNotFound khi
// phiên không tồn tại hoặc đã hết hạn
func GetRatePlanWizard(ctx context.Context, rdb *redis.Client, sessionID string) (*RatePlanWizardSession, error) {
	val, err := rdb.Get(ctx, wizardKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, errors.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session RatePlanWizardSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SaveRatePlanWizard lưu phiên wizard, gia hạn TTL
func SaveRatePlanWizard(ctx context.Context, rdb *redis.Client, session *RatePlanWizardSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, wizardKey(session.SessionID), b, WizardSessionTTL).Err()
}

// DeleteRatePlanWizard hủy phiên wizard sau khi submit thành công hoặc hủy bỏ
func DeleteRatePlanWizard(ctx context.Context, rdb *redis.Client, sessionID string) error {
	return rdb.Del(ctx, wizardKey(sessionID)).Err()
}
