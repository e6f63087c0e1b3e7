package services

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsSlotUniqueViolation(t *testing.T) {
	slotErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_appointments_slot"}
	assert.True(t, isSlotUniqueViolation(slotErr))
	assert.True(t, isSlotUniqueViolation(fmt.Errorf("create appointment: %w", slotErr)))

	otherIndex := &pgconn.PgError{Code: "23505", ConstraintName: "idx_employee_logs_order"}
	assert.False(t, isSlotUniqueViolation(otherIndex))
	assert.False(t, isSlotUniqueViolation(&pgconn.PgError{Code: "23503", ConstraintName: "idx_appointments_slot"}))
	assert.False(t, isSlotUniqueViolation(fmt.Errorf("plain error")))
	assert.False(t, isSlotUniqueViolation(nil))
}
