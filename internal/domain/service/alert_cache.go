package service

import (
	"time"

	"fleetalert/internal/domain/entity"
)

// AlertBoardCache keeps recently computed dashboard boards keyed by reference date.
type AlertBoardCache interface {
	Get(ref time.Time) (*entity.AlertBoard, bool)
	Set(ref time.Time, board *entity.AlertBoard)
}
