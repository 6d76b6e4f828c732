package services

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wedding-backend/models"
)

// SuratJalanInput is bound from the multipart delivery note form.
type SuratJalanInput struct {
	OrderID       string `form:"order_id"`
	ClientName    string `form:"client_name" binding:"required"`
	Phone         string `form:"phone"`
	Venue         string `form:"venue"`
	WeddingDate   string `form:"wedding_date" binding:"required"`
	EventTime     string `form:"event_time"`
	Items         string `form:"items"`
	Notes         string `form:"notes"`
	SignatureData string `form:"signature_data"`
}

// SuratJalanFiles are the optional uploads of the form. A nil header keeps
// the stored image on update.
type SuratJalanFiles struct {
	Decoration *multipart.FileHeader
	Venue      *multipart.FileHeader
	Signature  *multipart.FileHeader
}

type SuratJalanService struct {
	DB     *gorm.DB
	Images *ImageStore
}

func NewSuratJalanService(db *gorm.DB, images *ImageStore) *SuratJalanService {
	return &SuratJalanService{DB: db, Images: images}
}

func (s *SuratJalanService) List(ctx context.Context) ([]models.SuratJalan, error) {
	var out []models.SuratJalan
	err := s.DB.WithContext(ctx).Order("wedding_date, id").Find(&out).Error
	return out, err
}

func (s *SuratJalanService) Get(ctx context.Context, id uint) (*models.SuratJalan, error) {
	var sj models.SuratJalan
	if err := s.DB.WithContext(ctx).First(&sj, id).Error; err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return &sj, nil
}

// storedImages holds names saved during one request so a failed write can
// take them back.
type storedImages struct {
	decoration, venue, signature string
}

func (st storedImages) all() []string {
	return []string{st.decoration, st.venue, st.signature}
}

func (s *SuratJalanService) saveImages(in SuratJalanInput, files SuratJalanFiles) (storedImages, error) {
	var st storedImages
	var err error

	save := func(fh *multipart.FileHeader, dst *string) {
		if err != nil || fh == nil {
			return
		}
		*dst, err = s.Images.SaveUpload(fh)
	}
	save(files.Decoration, &st.decoration)
	save(files.Venue, &st.venue)
	save(files.Signature, &st.signature)

	if err == nil && st.signature == "" && strings.TrimSpace(in.SignatureData) != "" {
		st.signature, err = s.Images.SaveBase64(in.SignatureData)
	}
	if err != nil {
		s.Images.Remove(st.all()...)
		return storedImages{}, err
	}
	return st, nil
}

func applySuratJalanInput(sj *models.SuratJalan, in SuratJalanInput) error {
	date, err := ParseDate(in.WeddingDate)
	if err != nil {
		return err
	}
	orderID, err := ParseOptionalID(in.OrderID)
	if err != nil {
		return err
	}

	sj.OrderID = orderID
	sj.ClientName = in.ClientName
	sj.Phone = in.Phone
	sj.Venue = in.Venue
	sj.WeddingDate = date
	sj.EventTime = in.EventTime
	sj.Items = in.Items
	sj.Notes = in.Notes
	return nil
}

func (s *SuratJalanService) Create(ctx context.Context, in SuratJalanInput, files SuratJalanFiles) (uint, error) {
	var sj models.SuratJalan
	if err := applySuratJalanInput(&sj, in); err != nil {
		return 0, err
	}

	st, err := s.saveImages(in, files)
	if err != nil {
		return 0, err
	}
	sj.DecorationImage = st.decoration
	sj.VenueImage = st.venue
	sj.SignatureImage = st.signature

	if err := s.DB.WithContext(ctx).Omit("Order").Create(&sj).Error; err != nil {
		s.Images.Remove(st.all()...)
		return 0, err
	}
	return sj.ID, nil
}

// Update rewrites the note. Replaced image files are removed only after the
// row change commits.
func (s *SuratJalanService) Update(ctx context.Context, id uint, in SuratJalanInput, files SuratJalanFiles) error {
	var probe models.SuratJalan
	if err := applySuratJalanInput(&probe, in); err != nil {
		return err
	}

	st, err := s.saveImages(in, files)
	if err != nil {
		return err
	}

	var replaced []string
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sj models.SuratJalan
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&sj, id).Error; err != nil {
			return notFoundAs(err, ErrNotFound)
		}

		if err := applySuratJalanInput(&sj, in); err != nil {
			return err
		}
		swap := func(current *string, next string) {
			if next == "" {
				return
			}
			if *current != "" {
				replaced = append(replaced, *current)
			}
			*current = next
		}
		swap(&sj.DecorationImage, st.decoration)
		swap(&sj.VenueImage, st.venue)
		swap(&sj.SignatureImage, st.signature)

		return tx.Omit("Order", "CreatedAt").Save(&sj).Error
	})
	if err != nil {
		s.Images.Remove(st.all()...)
		return err
	}

	s.Images.Remove(replaced...)
	return nil
}

func (s *SuratJalanService) Delete(ctx context.Context, id uint) error {
	var files []string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sj models.SuratJalan
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&sj, id).Error; err != nil {
			return notFoundAs(err, ErrNotFound)
		}
		if err := tx.Delete(&models.SuratJalan{}, id).Error; err != nil {
			return err
		}
		files = sj.ImageFiles()
		return nil
	})
	if err != nil {
		return err
	}

	s.Images.Remove(files...)
	return nil
}

// DeleteExpired removes notes whose wedding date is before cutoff and
// returns how many rows went away.
func (s *SuratJalanService) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	var expired []models.SuratJalan
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("wedding_date < ?", cutoff.Format("2006-01-02")).
			Find(&expired).Error; err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}

		ids := make([]uint, 0, len(expired))
		for _, sj := range expired {
			ids = append(ids, sj.ID)
		}
		return tx.Where("id IN ?", ids).Delete(&models.SuratJalan{}).Error
	})
	if err != nil {
		return 0, err
	}

	for _, sj := range expired {
		s.Images.Remove(sj.ImageFiles()...)
	}
	return len(expired), nil
}
