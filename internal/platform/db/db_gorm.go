// Package db はGORMによるデータベース接続の初期化を提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"investmate_backend/internal/feature/portfolio/domain/entity"
)

// OpenDB は環境変数の設定に従ってデータベース接続を確立します。
//
// DB_HOST が設定されている場合はPostgreSQLに接続し、未設定の場合は
// DB_PATH（デフォルト: investmate.db）のSQLiteファイルを使用します。
// 起動直後にDBコンテナが未準備のケースがあるため、60秒を上限に接続を
// リトライします。接続後、ポートフォリオテーブルをマイグレーションします。
func OpenDB() *gorm.DB {
	dial := dialector()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dial, &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if err := db.AutoMigrate(&entity.Holding{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// dialector は環境変数からGORMダイアレクタを組み立てます。
func dialector() gorm.Dialector {
	host := os.Getenv("DB_HOST")
	if host == "" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "investmate.db"
		}
		return gsqlite.Open(path)
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host, user, pass, name, port)
	return gpostgres.Open(dsn)
}
