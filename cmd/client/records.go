package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tanzeel8246/madrasa/models"
)

// Record commands operate on any known collection by name, e.g.
//
//	madrasa list students
//	madrasa add students --data '{"name":"Ahmed","father_name":"Khalid"}'
//	madrasa update fees 42 --data '{"status":"paid"}'
//	madrasa delete students temp-17

var recordData string

var listCmd = &cobra.Command{
	Use:       "list <collection>",
	Short:     "List records of a collection",
	Args:      cobra.ExactArgs(1),
	ValidArgs: models.KnownTables(),
	RunE:      runList,
}

var addCmd = &cobra.Command{
	Use:       "add <collection>",
	Short:     "Add a record to a collection",
	Args:      cobra.ExactArgs(1),
	ValidArgs: models.KnownTables(),
	RunE:      runAdd,
}

var updateCmd = &cobra.Command{
	Use:   "update <collection> <id>",
	Short: "Update fields of a record",
	Args:  cobra.ExactArgs(2),
	RunE:  runUpdate,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <collection> <id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(2),
	RunE:  runDelete,
}

func init() {
	addCmd.Flags().StringVar(&recordData, "data", "", "record fields as a JSON object (required)")
	_ = addCmd.MarkFlagRequired("data")

	updateCmd.Flags().StringVar(&recordData, "data", "", "fields to change as a JSON object (required)")
	_ = updateCmd.MarkFlagRequired("data")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := appContext(cmd)

	rows, err := app.Services.Collections.List(ctx, args[0])
	if err != nil {
		return err
	}

	records, err := models.DecodeRecords(args[0], rows)
	if err != nil {
		return fmt.Errorf("decode %s records: %w", args[0], err)
	}

	output, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := appContext(cmd)

	row, err := decodeRecordData()
	if err != nil {
		return err
	}

	created, err := app.Services.Collections.Create(ctx, args[0], row)
	if err != nil {
		return err
	}

	if models.IsTempID(created.ID()) {
		fmt.Printf("Saved offline as %s; will sync when online\n", created.ID())
		return nil
	}
	fmt.Printf("Created %s\n", created.ID())
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := appContext(cmd)

	row, err := decodeRecordData()
	if err != nil {
		return err
	}

	if err = app.Services.Collections.Update(ctx, args[0], args[1], row); err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", args[1])
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := appContext(cmd)

	if err := app.Services.Collections.Delete(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[1])
	return nil
}

func decodeRecordData() (models.Row, error) {
	var row models.Row
	if err := json.Unmarshal([]byte(strings.TrimSpace(recordData)), &row); err != nil {
		return nil, fmt.Errorf("--data must be a JSON object: %w", err)
	}
	return row, nil
}
