package domain

import (
	"fmt"
	"time"
)

// LeaveType classifies a leave register entry.
type LeaveType string

const (
	LeaveVacation LeaveType = "vacation"
	LeaveMedical  LeaveType = "medical_leave"
	LeavePremium  LeaveType = "premium_leave"
	LeaveOther    LeaveType = "other"
)

var leaveTypes = []LeaveType{LeaveVacation, LeaveMedical, LeavePremium, LeaveOther}

// ParseLeaveType rejects values outside the fixed leave type set.
func ParseLeaveType(value string) (LeaveType, error) {
	lt := LeaveType(value)
	for _, known := range leaveTypes {
		if lt == known {
			return lt, nil
		}
	}
	return "", fmt.Errorf("unknown leave type %q", value)
}

// LeaveRecord is an append-only entry in the leave register. Records are
// never updated after insertion.
type LeaveRecord struct {
	ID        string
	PersonID  string
	Type      LeaveType
	StartDate time.Time
	EndDate   time.Time
	Note      string

	PersonName string
}
