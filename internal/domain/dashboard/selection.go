// Package dashboard derives the statistics dashboard view models from console snapshots.
package dashboard

import (
	"github.com/orris-inc/statsboard/internal/shared/errors"
)

// DataType selects the ranking dimension.
type DataType string

const (
	DataTypeNodes DataType = "nodes"
	DataTypeUsers DataType = "users"
)

// TimeFrame selects the ranking day.
type TimeFrame string

const (
	TimeFrameToday     TimeFrame = "today"
	TimeFrameYesterday TimeFrame = "yesterday"
)

// DataTypes lists the ranking dimensions in display order.
var DataTypes = []DataType{DataTypeNodes, DataTypeUsers}

// TimeFrames lists the ranking days in display order.
var TimeFrames = []TimeFrame{TimeFrameToday, TimeFrameYesterday}

func (d DataType) IsValid() bool {
	return d == DataTypeNodes || d == DataTypeUsers
}

func (f TimeFrame) IsValid() bool {
	return f == TimeFrameToday || f == TimeFrameYesterday
}

// Selection is the ranking view state: one of four combinations.
type Selection struct {
	DataType  DataType  `json:"data_type"`
	TimeFrame TimeFrame `json:"time_frame"`
}

// DefaultSelection is nodes/today.
func DefaultSelection() Selection {
	return Selection{DataType: DataTypeNodes, TimeFrame: TimeFrameToday}
}

// ParseSelection validates raw query values. Empty values fall back to the defaults.
func ParseSelection(dataType, timeFrame string) (Selection, error) {
	sel := DefaultSelection()

	if dataType != "" {
		sel.DataType = DataType(dataType)
		if !sel.DataType.IsValid() {
			return Selection{}, errors.NewValidationError("invalid data type", "type must be one of: nodes, users")
		}
	}

	if timeFrame != "" {
		sel.TimeFrame = TimeFrame(timeFrame)
		if !sel.TimeFrame.IsValid() {
			return Selection{}, errors.NewValidationError("invalid time frame", "range must be one of: today, yesterday")
		}
	}

	return sel, nil
}

// WithDataType returns a copy of the selection with another data type.
func (s Selection) WithDataType(d DataType) Selection {
	s.DataType = d
	return s
}

// WithTimeFrame returns a copy of the selection with another time frame.
func (s Selection) WithTimeFrame(f TimeFrame) Selection {
	s.TimeFrame = f
	return s
}
