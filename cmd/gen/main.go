// Command gen writes typed GORM query helpers for the persistence models.
package main

import (
	"blog/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AuthorModel{},
		model.PostModel{},
		model.ActivityModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
