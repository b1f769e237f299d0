// Package storage uploads measurement results to a hosted libsql
// database, one database per benchmark run.
package storage

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/rustopian/eisodos/harness"
	"github.com/rustopian/eisodos/logger"
)

type Storage struct {
	OrgName   string
	GroupName string
	ApiToken  string
	AuthToken string
}

func (s *Storage) CreateDatabase(name string) error {
	url := fmt.Sprintf("https://api.turso.tech/v1/organizations/%v/databases", s.OrgName)
	req, err := http.NewRequest("POST", url, bytes.NewReader([]byte(fmt.Sprintf(`{"name":"%v","group":"%v"}`, name, s.GroupName))))
	if err != nil {
		return err
	}
	req.Header.Add("Authorization", "Bearer "+s.ApiToken)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("unexpected status code %v: %v", resp.StatusCode, string(body))
	}
	logger.Logger.Infof("created database %v", name)
	return nil
}

func (s *Storage) ConnectDb(name string) (*sql.DB, error) {
	url := fmt.Sprintf("libsql://%v-%v.turso.io?authToken=%v", name, s.OrgName, s.AuthToken)
	return sql.Open("libsql", url)
}

func (s *Storage) DbLink(name string) string {
	return fmt.Sprintf("%v-%v.turso.io", name, s.OrgName)
}

func (s *Storage) InitResultsDb(db *sql.DB, meta map[string]any) error {
	_, err := db.Exec("CREATE TABLE IF NOT EXISTS parameters (name TEXT PRIMARY KEY, value)")
	if err != nil {
		return err
	}
	parameters := make([]any, 0)
	parameters = append(parameters, "time", time.Now().Format("2006-01-02 15:04:05"))
	for key, value := range meta {
		parameters = append(parameters, key, fmt.Sprintf("%v", value))
	}
	placeholders := strings.Join(slices.Repeat([]string{"(?, ?)"}, len(parameters)/2), ", ")
	_, err = db.Exec(
		fmt.Sprintf("INSERT INTO parameters VALUES %v ON CONFLICT DO NOTHING", placeholders),
		parameters...,
	)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS measurements (
		label TEXT PRIMARY KEY,
		environment TEXT,
		target TEXT,
		variation TEXT,
        attempts REAL,
        cost REAL,
		error TEXT
    )`)
	if err != nil {
		return err
	}
	logger.Logger.Infof("initialized database for benchmark results with meta %v", meta)
	return nil
}

func (s *Storage) UploadResults(db *sql.DB, results []harness.Result) error {
	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		return err
	}
	for _, result := range results {
		errText := ""
		if result.Err != nil {
			errText = result.Err.Error()
		}
		_, err = tx.Exec(
			"INSERT INTO measurements VALUES (?, ?, ?, ?, ?, ?, ?)",
			result.Label,
			result.Environment,
			result.Target,
			result.Variation,
			result.Attempts,
			result.Cost,
			errText,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
