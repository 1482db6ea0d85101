// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/nz-walks/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var (
	regionColumns         = []string{"id", "code", "name", "region_image_url"}
	walkDifficultyColumns = []string{"id", "code"}
	walkColumns           = []string{"id", "name", "length", "region_id", "walk_difficulty_id"}

	// walkWithReferencesColumns selects a walk together with its region and
	// walk difficulty.
	walkWithReferencesColumns = []string{
		"w.id", "w.name", "w.length", "w.region_id", "w.walk_difficulty_id",
		"r.id", "r.code", "r.name", "r.region_image_url",
		"d.id", "d.code",
	}

	userColumns = []string{"id", "username", "email", "first_name", "last_name", "password_hash"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func wrapBuildErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

// ── regions ──────────────────────────────────────────────────────────────────

func buildSelectRegionsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(regionColumns...).From("regions").OrderBy("name").ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildSelectRegionQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	query, args, err := b.Select(regionColumns...).From("regions").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildInsertRegionQuery(b sq.StatementBuilderType, region models.Region) (string, []any, error) {
	query, args, err := b.Insert("regions").
		Columns(regionColumns...).
		Values(region.ID, region.Code, region.Name, region.RegionImageURL).
		Suffix(returning(regionColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildUpdateRegionQuery(b sq.StatementBuilderType, id uuid.UUID, region models.Region) (string, []any, error) {
	query, args, err := b.Update("regions").
		Set("code", region.Code).
		Set("name", region.Name).
		Set("region_image_url", region.RegionImageURL).
		Where(sq.Eq{"id": id}).
		Suffix(returning(regionColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteRegionQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	query, args, err := b.Delete("regions").
		Where(sq.Eq{"id": id}).
		Suffix(returning(regionColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// ── walk difficulties ────────────────────────────────────────────────────────

func buildSelectWalkDifficultiesQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(walkDifficultyColumns...).From("walk_difficulties").OrderBy("code").ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildSelectWalkDifficultyQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	query, args, err := b.Select(walkDifficultyColumns...).From("walk_difficulties").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildInsertWalkDifficultyQuery(b sq.StatementBuilderType, difficulty models.WalkDifficulty) (string, []any, error) {
	query, args, err := b.Insert("walk_difficulties").
		Columns(walkDifficultyColumns...).
		Values(difficulty.ID, difficulty.Code).
		Suffix(returning(walkDifficultyColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildUpdateWalkDifficultyQuery(b sq.StatementBuilderType, id uuid.UUID, difficulty models.WalkDifficulty) (string, []any, error) {
	query, args, err := b.Update("walk_difficulties").
		Set("code", difficulty.Code).
		Where(sq.Eq{"id": id}).
		Suffix(returning(walkDifficultyColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteWalkDifficultyQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	query, args, err := b.Delete("walk_difficulties").
		Where(sq.Eq{"id": id}).
		Suffix(returning(walkDifficultyColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// ── walks ────────────────────────────────────────────────────────────────────

func selectWalksWithReferences(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(walkWithReferencesColumns...).
		From("walks w").
		Join("regions r ON r.id = w.region_id").
		Join("walk_difficulties d ON d.id = w.walk_difficulty_id")
}

func buildSelectWalksQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := selectWalksWithReferences(b).OrderBy("w.name").ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildSelectWalkQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	query, args, err := selectWalksWithReferences(b).Where(sq.Eq{"w.id": id}).ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildInsertWalkQuery(b sq.StatementBuilderType, walk models.Walk) (string, []any, error) {
	query, args, err := b.Insert("walks").
		Columns(walkColumns...).
		Values(walk.ID, walk.Name, walk.Length, walk.RegionID, walk.WalkDifficultyID).
		Suffix(returning(walkColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildUpdateWalkQuery(b sq.StatementBuilderType, id uuid.UUID, walk models.Walk) (string, []any, error) {
	query, args, err := b.Update("walks").
		Set("name", walk.Name).
		Set("length", walk.Length).
		Set("region_id", walk.RegionID).
		Set("walk_difficulty_id", walk.WalkDifficultyID).
		Where(sq.Eq{"id": id}).
		Suffix(returning(walkColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteWalkQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	query, args, err := b.Delete("walks").
		Where(sq.Eq{"id": id}).
		Suffix(returning(walkColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// ── users ────────────────────────────────────────────────────────────────────

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From("users").
		Where(sq.Expr("lower(username) = lower(?)", username)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildSelectUserRolesQuery(b sq.StatementBuilderType, userID uuid.UUID) (string, []any, error) {
	query, args, err := b.Select("r.name").
		From("roles r").
		Join("user_roles ur ON ur.role_id = r.id").
		Where(sq.Eq{"ur.user_id": userID}).
		OrderBy("r.name").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildInsertUserRolesQuery(b sq.StatementBuilderType, userID uuid.UUID, roles []string) (string, []any, error) {
	insert := b.Insert("user_roles").Columns("user_id", "role_id")
	for _, role := range roles {
		insert = insert.Values(userID, sq.Expr("(SELECT id FROM roles WHERE name = ?)", role))
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}
