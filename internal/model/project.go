package model

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID        string   `gorm:"size:64;primaryKey" json:"id"`
	OwnerID   string   `gorm:"size:64;index;not null" json:"ownerId"`
	TitleEN   string   `gorm:"column:title_en;type:text" json:"title_en"`
	TitleZH   string   `gorm:"column:title_zh;type:text" json:"title_zh"`
	DescEN    string   `gorm:"column:desc_en;type:text" json:"desc_en"`
	DescZH    string   `gorm:"column:desc_zh;type:text" json:"desc_zh"`
	ContentEN string   `gorm:"column:content_en;type:text" json:"content_en"`
	ContentZH string   `gorm:"column:content_zh;type:text" json:"content_zh"`
	Tags      []string `gorm:"serializer:json;type:jsonb" json:"tags"`
	ImageURL  string   `gorm:"type:text" json:"imageUrl"`
	GithubURL *string  `gorm:"type:text" json:"githubUrl,omitempty"`
	DemoURL   *string  `gorm:"type:text" json:"demoUrl,omitempty"`
	Featured  bool     `json:"featured"`
	// Order determines display sequence; "order" is reserved in Postgres so
	// the column is named sort_order. Nil sorts last.
	Order     *int64 `gorm:"column:sort_order" json:"order,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Project) Title(lang string) string {
	if lang == "zh" {
		return p.TitleZH
	}
	return p.TitleEN
}

func (p *Project) Desc(lang string) string {
	if lang == "zh" {
		return p.DescZH
	}
	return p.DescEN
}

func (p *Project) Content(lang string) string {
	if lang == "zh" {
		return p.ContentZH
	}
	return p.ContentEN
}

// SortProjects orders projects for display: order ascending with missing
// values last, ties broken by createdAt descending.
func SortProjects(projects []*Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		oi, oj := orderOrMax(projects[i]), orderOrMax(projects[j])
		if oi != oj {
			return oi < oj
		}
		return projects[i].CreatedAt > projects[j].CreatedAt
	})
}

func orderOrMax(p *Project) int64 {
	if p.Order == nil {
		return int64(^uint64(0) >> 1)
	}
	return *p.Order
}
