// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/nz-walks/models/dto"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func (a *App) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and print the bearer token",
		Long: `Log in and print the bearer token.

Export the token as ADAPTER_TOKEN to authorize later write commands.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.api.Login(cmd.Context(), dto.LoginRequest{Username: args[0], Password: args[1]})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, token)
			return err
		},
	}
}

func (a *App) walksCommand() *cobra.Command {
	walks := &cobra.Command{
		Use:   "walks",
		Short: "Manage walks",
	}

	walks.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List walks",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.api.ListWalks(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(result)
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one walk",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				result, err := a.api.GetWalk(cmd.Context(), id)
				if err != nil {
					return err
				}
				return a.print(result)
			},
		},
		&cobra.Command{
			Use:   "add <name> <length> <region-id> <walk-difficulty-id>",
			Short: "Add a walk",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				fields, err := parseWalkArgs(args)
				if err != nil {
					return err
				}
				result, err := a.api.AddWalk(cmd.Context(), dto.AddWalkRequest(fields))
				if err != nil {
					return err
				}
				return a.print(result)
			},
		},
		&cobra.Command{
			Use:   "update <id> <name> <length> <region-id> <walk-difficulty-id>",
			Short: "Replace a walk",
			Args:  cobra.ExactArgs(5),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				fields, err := parseWalkArgs(args[1:])
				if err != nil {
					return err
				}
				result, err := a.api.UpdateWalk(cmd.Context(), id, dto.UpdateWalkRequest(fields))
				if err != nil {
					return err
				}
				return a.print(result)
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a walk",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				result, err := a.api.DeleteWalk(cmd.Context(), id)
				if err != nil {
					return err
				}
				return a.print(result)
			},
		},
	)

	return walks
}

func (a *App) regionsCommand() *cobra.Command {
	regions := &cobra.Command{
		Use:   "regions",
		Short: "Manage regions",
	}

	regions.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List regions",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.api.ListRegions(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(result)
			},
		},
		&cobra.Command{
			Use:   "add <code> <name> [image-url]",
			Short: "Add a region",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				request := dto.AddRegionRequest{Code: args[0], Name: args[1]}
				if len(args) == 3 {
					request.RegionImageURL = &args[2]
				}
				result, err := a.api.AddRegion(cmd.Context(), request)
				if err != nil {
					return err
				}
				return a.print(result)
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a region",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				result, err := a.api.DeleteRegion(cmd.Context(), id)
				if err != nil {
					return err
				}
				return a.print(result)
			},
		},
	)

	return regions
}

func (a *App) difficultiesCommand() *cobra.Command {
	difficulties := &cobra.Command{
		Use:     "difficulties",
		Aliases: []string{"walk-difficulties"},
		Short:   "Manage walk difficulties",
	}

	difficulties.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List walk difficulties",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.api.ListWalkDifficulties(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(result)
			},
		},
		&cobra.Command{
			Use:   "add <code>",
			Short: "Add a walk difficulty",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.api.AddWalkDifficulty(cmd.Context(), dto.AddWalkDifficultyRequest{Code: args[0]})
				if err != nil {
					return err
				}
				return a.print(result)
			},
		},
	)

	return difficulties
}

// walkFields is the shared layout of dto.AddWalkRequest and
// dto.UpdateWalkRequest.
type walkFields struct {
	Name             string    `json:"name"`
	Length           float64   `json:"length"`
	RegionID         uuid.UUID `json:"regionId"`
	WalkDifficultyID uuid.UUID `json:"walkDifficultyId"`
}

// parseWalkArgs reads <name> <length> <region-id> <walk-difficulty-id>.
func parseWalkArgs(args []string) (walkFields, error) {
	length, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return walkFields{}, fmt.Errorf("%w: %q", ErrInvalidLength, args[1])
	}
	regionID, err := parseID(args[2])
	if err != nil {
		return walkFields{}, err
	}
	difficultyID, err := parseID(args[3])
	if err != nil {
		return walkFields{}, err
	}

	return walkFields{
		Name:             args[0],
		Length:           length,
		RegionID:         regionID,
		WalkDifficultyID: difficultyID,
	}, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
