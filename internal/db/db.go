package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rdssystems/UniStyle-sub001/internal/config"
	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
	"github.com/rdssystems/UniStyle-sub001/internal/models"
	"github.com/rdssystems/UniStyle-sub001/internal/timezone"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Professional{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	db.Exec(fmt.Sprintf(`
        UPDATE tenants
        SET timezone = '%s'
        WHERE timezone IS NULL OR timezone = ''
    `, timezone.DefaultTimezone))

	applyScheduleExclusion(db)

	return db
}

// applyScheduleExclusion instala a última linha de defesa contra
// double-booking: uma constraint de exclusão do Postgres sobre a
// janela ocupada de cada agendamento ativo. Violações chegam à API
// como código 23P01 e viram scheduling_conflict.
func applyScheduleExclusion(db *gorm.DB) {
	windowMinutes := int(domain.SlotHalfWidth.Minutes())

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Warn().Err(err).Msg("btree_gist unavailable, skipping exclusion constraint")
		return
	}

	stmt := fmt.Sprintf(`
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            tenant_id WITH =,
            professional_id WITH =,
            tstzrange(
                date - interval '%d minutes',
                date + interval '%d minutes'
            ) WITH &&
        )
        WHERE (status IN ('Agendado', 'Confirmado', 'Em Atendimento'))
    `, windowMinutes, windowMinutes)

	if err := db.Exec(stmt).Error; err != nil {
		// já existe em re-deploys; qualquer outra falha só degrada
		// a defesa extra, o lock + transação seguem valendo
		log.Debug().Err(err).Msg("exclusion constraint not (re)applied")
	}
}
