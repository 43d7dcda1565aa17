package cast

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CastMember is the global identity of a cast member. Per-season role and
// catchphrase live on SeasonCast.
type CastMember struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"not null" json:"name"`
	EnglishName string `gorm:"column:english_name" json:"english_name,omitempty"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `gorm:"column:image_url" json:"image_url,omitempty"`
	Instagram   string `json:"instagram,omitempty"`

	BirthDate  string `gorm:"column:birth_date" json:"birth_date,omitempty"`
	Birthplace string `json:"birthplace,omitempty"`
	Height     string `json:"height,omitempty"`
	BloodType  string `gorm:"column:blood_type" json:"blood_type,omitempty"`
	MBTI       string `gorm:"column:mbti" json:"mbti,omitempty"`
	Agency     string `json:"agency,omitempty"`
	Group      string `gorm:"column:group_name" json:"group,omitempty"`
	DebutDate  string `gorm:"column:debut_date" json:"debut_date,omitempty"`
	Motto      string `json:"motto,omitempty"`

	// Markdown
	DetailContent string `gorm:"column:detail_content" json:"detail_content,omitempty"`

	Images []CastImage `gorm:"foreignKey:CastID;constraint:OnDelete:CASCADE;" json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *CastMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

type CastImage struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	CastID string `gorm:"type:uuid;not null;index" json:"cast_id"`

	ImageURL  string `gorm:"column:image_url;not null" json:"image_url"`
	Caption   string `json:"caption,omitempty"`
	Year      string `json:"year,omitempty"`
	SortOrder int    `gorm:"column:sort_order;default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *CastImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// SeasonCast assigns a member to a season with the season-specific bits.
type SeasonCast struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	SeasonID string `gorm:"type:uuid;not null;index" json:"season_id"`
	CastID   string `gorm:"type:uuid;not null;index" json:"cast_id"`

	Role        string `json:"role"`
	Catchphrase string `json:"catchphrase"`
	ImageURL    string `gorm:"column:image_url" json:"image_url,omitempty"`

	Cast *CastMember `gorm:"foreignKey:CastID" json:"cast,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (sc *SeasonCast) BeforeCreate(tx *gorm.DB) error {
	if sc.ID == "" {
		sc.ID = uuid.NewString()
	}
	return nil
}

func (SeasonCast) TableName() string { return "season_cast" }
