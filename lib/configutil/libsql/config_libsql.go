package configlibsql

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type Struct struct {
	// a local sqlite database file, used when no url is given
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (config Struct) open() (*sql.DB, error) {
	if config.Url == "" {
		if config.File == "" {
			return nil, fmt.Errorf("a database file was not specified")
		}
		return sql.Open("sqlite", config.File)
	}

	values := url.Values{}
	if config.AuthToken != "" {
		values.Add("authToken", config.AuthToken)
	}
	return sql.Open("libsql", config.Url+"?"+values.Encode())
}

func (config Struct) OpenDB(schema string) (*sql.DB, error) {
	db, err := config.open()
	if err != nil {
		return nil, err
	}
	if schema != "" {
		_, err = db.Exec(schema)
		if err != nil && !strings.Contains(err.Error(), "already exists") {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
