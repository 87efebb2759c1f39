package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

//go:embed schema.sql
var schemaSQL string

// ApplySchema creates the record tables if they do not exist yet
func ApplySchema(ctx context.Context, client *postgres.Client) error {
	if _, err := client.DB().ExecContext(ctx, schemaSQL); err != nil {
		return apperrors.NewInternalError("failed to apply schema", err)
	}
	return nil
}

// Truncate empties every record table
func Truncate(ctx context.Context, client *postgres.Client) error {
	query := fmt.Sprintf("TRUNCATE TABLE %s, %s, %s, %s, %s",
		cartItemsTable, cartsTable, ordersTable, claimsTable, appointmentsTable)
	if _, err := client.DB().ExecContext(ctx, query); err != nil {
		return apperrors.NewInternalError("failed to truncate tables", err)
	}
	return nil
}
