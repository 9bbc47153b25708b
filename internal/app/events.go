package app

import (
	"go.uber.org/zap"

	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/pkg/common"
)

// saveOprLog persists audit entries published on domain.TopicOprLog
func (a *Application) saveOprLog(entry domain.SysOprLog) {
	entry.ID = common.UUIDint64()
	if err := a.gormDB.Create(&entry).Error; err != nil {
		zap.L().Error("failed to save operation log",
			zap.String("action", entry.OptAction),
			zap.Error(err))
	}
}
