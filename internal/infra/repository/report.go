package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"airease-backend/internal/domain/report"
	"airease-backend/internal/infra"
	"airease-backend/internal/pkg/pgconv"
	"airease-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertReportSQL = `
INSERT INTO reports (id, user_email, category, content, flight_id, flight_info, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	selectReportColumns = `SELECT id, user_email, category, content, flight_id, flight_info, status, created_at, updated_at FROM reports`
)

type ReportRepository struct {
	db DBTX
}

func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, rep *report.Report) error {
	var info []byte
	if rep.FlightInfo() != nil {
		b, err := json.Marshal(rep.FlightInfo())
		if err != nil {
			return infra.WrapRepoErr("failed to encode flight info", err)
		}
		info = b
	}

	_, err := r.db.Exec(ctx, insertReportSQL,
		pgconv.UUIDToPgtype(rep.ID()),
		rep.UserEmail().Value(),
		string(rep.Category()),
		rep.Content().String(),
		pgconv.StringPtrToPgtype(rep.FlightID()),
		info,
		string(rep.Status()),
		pgconv.TimeToPgtype(rep.CreatedAt()),
		pgconv.TimeToPgtype(rep.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create report", err)
	}
	return nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReportView, error) {
	row := r.db.QueryRow(ctx, selectReportColumns+` WHERE id = $1`, pgconv.UUIDToPgtype(id))
	view, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("report not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find report", err)
	}
	return view, nil
}

func (r *ReportRepository) List(ctx context.Context, f queries.ReportFilter) ([]queries.ReportView, error) {
	var (
		conds []string
		args  []any
	)
	add := func(col string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		conds = append(conds, col+" = $"+strconv.Itoa(len(args)))
	}
	add("user_email", f.UserEmail)
	add("category", f.Category)
	add("status", f.Status)

	sql := selectReportColumns
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	sql += " ORDER BY created_at DESC, id LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reports", err)
	}
	defer rows.Close()

	views := []queries.ReportView{}
	for rows.Next() {
		v, err := scanReport(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan report", err)
		}
		views = append(views, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reports", err)
	}
	return views, nil
}

func scanReport(row pgx.Row) (*queries.ReportView, error) {
	var (
		id        pgtype.UUID
		flightID  pgtype.Text
		info      []byte
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
		v         queries.ReportView
	)
	if err := row.Scan(&id, &v.UserEmail, &v.Category, &v.Content, &flightID, &info, &v.Status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	v.ID = pgconv.UUIDFromPgtype(id)
	v.FlightID = pgconv.StringPtrFromPgtype(flightID)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	if len(info) > 0 {
		if err := json.Unmarshal(info, &v.FlightInfo); err != nil {
			return nil, err
		}
	}
	v.CategoryLabel = report.Category(v.Category).Label()
	v.StatusLabel = report.Status(v.Status).Label()
	return &v, nil
}
