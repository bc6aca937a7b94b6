package job_test

import (
	"context"
	"testing"
	"time"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/company"
	companyerrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/company/errors"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/job"
	joberrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/job/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeJobRepository struct {
	createFn                  func(ctx context.Context, j *job.Job) error
	findAllByOwnerFn          func(ctx context.Context, userID, search, status string) ([]job.Job, error)
	findAllByCompanyAndOwner  func(ctx context.Context, userID, companyID string) ([]job.Job, error)
	findByIDAndOwnerFn        func(ctx context.Context, userID, id string) (*job.Job, error)
	updateFn                  func(ctx context.Context, j *job.Job) error
	deleteFn                  func(ctx context.Context, userID, id string) error
}

func (f *fakeJobRepository) Create(ctx context.Context, j *job.Job) error {
	if f.createFn != nil {
		return f.createFn(ctx, j)
	}
	return nil
}

func (f *fakeJobRepository) FindAllByOwner(ctx context.Context, userID, search, status string) ([]job.Job, error) {
	if f.findAllByOwnerFn != nil {
		return f.findAllByOwnerFn(ctx, userID, search, status)
	}
	return nil, nil
}

func (f *fakeJobRepository) FindAllByCompanyAndOwner(ctx context.Context, userID, companyID string) ([]job.Job, error) {
	if f.findAllByCompanyAndOwner != nil {
		return f.findAllByCompanyAndOwner(ctx, userID, companyID)
	}
	return nil, nil
}

func (f *fakeJobRepository) FindByIDAndOwner(ctx context.Context, userID, id string) (*job.Job, error) {
	if f.findByIDAndOwnerFn != nil {
		return f.findByIDAndOwnerFn(ctx, userID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeJobRepository) Update(ctx context.Context, j *job.Job) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, j)
	}
	return nil
}

func (f *fakeJobRepository) Delete(ctx context.Context, userID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID, id)
	}
	return nil
}

type fakeCompanyRepository struct {
	findByIDAndOwnerFn func(ctx context.Context, userID, id string) (*company.Company, error)
}

func (f *fakeCompanyRepository) Create(ctx context.Context, c *company.Company) error { return nil }
func (f *fakeCompanyRepository) FindAllByOwner(ctx context.Context, userID, search string) ([]company.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepository) FindByIDAndOwner(ctx context.Context, userID, id string) (*company.Company, error) {
	if f.findByIDAndOwnerFn != nil {
		return f.findByIDAndOwnerFn(ctx, userID, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCompanyRepository) Update(ctx context.Context, c *company.Company) error { return nil }
func (f *fakeCompanyRepository) Delete(ctx context.Context, userID, id string) error  { return nil }
func (f *fakeCompanyRepository) Summarize(ctx context.Context, userID, search string) ([]company.SummaryRow, error) {
	return nil, nil
}

func TestJobService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	companyID := uuid.New()

	ownedCompany := &company.Company{
		ID:          companyID,
		UserID:      uuid.MustParse(userID),
		Name:        "Acme",
		AvatarColor: "#ff8800",
		Initial:     "A",
	}

	t.Run("snapshots company name and applies defaults", func(t *testing.T) {
		companyRepo := &fakeCompanyRepository{
			findByIDAndOwnerFn: func(ctx context.Context, uid, cid string) (*company.Company, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, companyID.String(), cid)
				return ownedCompany, nil
			},
		}
		repo := &fakeJobRepository{
			createFn: func(ctx context.Context, j *job.Job) error {
				assert.Equal(t, "Acme", j.CompanyName)
				assert.Equal(t, job.StatusApplied, j.CurrentStatus)
				assert.Equal(t, "Medium", j.PriorityLevel)
				assert.Equal(t, "Full-time", j.JobType)
				assert.Equal(t, "Remote", j.WorkMode)
				assert.Equal(t, "Company Website", j.ApplicationSource)
				assert.Equal(t, "No", j.CoverLetterSubmitted)
				assert.Equal(t, "2026-04-12", j.ApplicationDate.Format("2006-01-02"))
				assert.Nil(t, j.FollowUpDate)
				return nil
			},
		}
		svc := job.NewService(repo, companyRepo)

		resp, err := svc.Create(ctx, userID, job.CreateJobRequest{
			CompanyID:       companyID.String(),
			PositionTitle:   "Backend Engineer",
			ApplicationDate: "2026-04-12",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Acme", resp.CompanyName)
		assert.Equal(t, companyID.String(), resp.CompanyID)
		assert.Equal(t, "2026-04-12", resp.ApplicationDate)
	})

	t.Run("company of another owner reads as not found", func(t *testing.T) {
		companyRepo := &fakeCompanyRepository{
			findByIDAndOwnerFn: func(ctx context.Context, uid, cid string) (*company.Company, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := job.NewService(&fakeJobRepository{}, companyRepo)

		_, err := svc.Create(ctx, userID, job.CreateJobRequest{
			CompanyID:       uuid.New().String(),
			PositionTitle:   "Backend Engineer",
			ApplicationDate: "2026-04-12",
		})

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("malformed company id", func(t *testing.T) {
		svc := job.NewService(&fakeJobRepository{}, &fakeCompanyRepository{})

		_, err := svc.Create(ctx, userID, job.CreateJobRequest{
			CompanyID:       "abc",
			PositionTitle:   "Backend Engineer",
			ApplicationDate: "2026-04-12",
		})

		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})

	t.Run("unparseable application date", func(t *testing.T) {
		companyRepo := &fakeCompanyRepository{
			findByIDAndOwnerFn: func(ctx context.Context, uid, cid string) (*company.Company, error) {
				return ownedCompany, nil
			},
		}
		svc := job.NewService(&fakeJobRepository{}, companyRepo)

		_, err := svc.Create(ctx, userID, job.CreateJobRequest{
			CompanyID:       companyID.String(),
			PositionTitle:   "Backend Engineer",
			ApplicationDate: "12/04/2026",
		})

		assert.ErrorIs(t, err, joberrors.ErrInvalidDateFormat)
	})
}

func TestJobService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	jobID := uuid.New()
	companyID := uuid.New()

	existing := func() *job.Job {
		return &job.Job{
			ID:              jobID,
			UserID:          uuid.MustParse(userID),
			CompanyID:       companyID,
			CompanyName:     "Acme",
			PositionTitle:   "Backend Engineer",
			CurrentStatus:   job.StatusApplied,
			ApplicationDate: time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
			Notes:           "initial notes",
		}
	}

	t.Run("notes-only update leaves the rest untouched", func(t *testing.T) {
		repo := &fakeJobRepository{
			findByIDAndOwnerFn: func(ctx context.Context, uid, id string) (*job.Job, error) {
				return existing(), nil
			},
			updateFn: func(ctx context.Context, j *job.Job) error {
				assert.Equal(t, "followed up by phone", j.Notes)
				assert.Equal(t, "Backend Engineer", j.PositionTitle)
				assert.Equal(t, "Acme", j.CompanyName)
				assert.Equal(t, job.StatusApplied, j.CurrentStatus)
				return nil
			},
		}
		svc := job.NewService(repo, &fakeCompanyRepository{})

		notes := "followed up by phone"
		resp, err := svc.Update(ctx, userID, jobID.String(), job.UpdateJobRequest{Notes: &notes})

		assert.NoError(t, err)
		assert.Equal(t, "followed up by phone", resp.Notes)
	})

	t.Run("re-pointing company refreshes the name snapshot", func(t *testing.T) {
		otherCompanyID := uuid.New()
		companyRepo := &fakeCompanyRepository{
			findByIDAndOwnerFn: func(ctx context.Context, uid, cid string) (*company.Company, error) {
				assert.Equal(t, otherCompanyID.String(), cid)
				return &company.Company{
					ID:     otherCompanyID,
					UserID: uuid.MustParse(userID),
					Name:   "Globex",
				}, nil
			},
		}
		repo := &fakeJobRepository{
			findByIDAndOwnerFn: func(ctx context.Context, uid, id string) (*job.Job, error) {
				return existing(), nil
			},
			updateFn: func(ctx context.Context, j *job.Job) error {
				assert.Equal(t, otherCompanyID, j.CompanyID)
				assert.Equal(t, "Globex", j.CompanyName)
				return nil
			},
		}
		svc := job.NewService(repo, companyRepo)

		cid := otherCompanyID.String()
		resp, err := svc.Update(ctx, userID, jobID.String(), job.UpdateJobRequest{CompanyID: &cid})

		assert.NoError(t, err)
		assert.Equal(t, "Globex", resp.CompanyName)
	})

	t.Run("re-pointing at an unowned company fails", func(t *testing.T) {
		repo := &fakeJobRepository{
			findByIDAndOwnerFn: func(ctx context.Context, uid, id string) (*job.Job, error) {
				return existing(), nil
			},
		}
		svc := job.NewService(repo, &fakeCompanyRepository{})

		cid := uuid.New().String()
		_, err := svc.Update(ctx, userID, jobID.String(), job.UpdateJobRequest{CompanyID: &cid})

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("missing job", func(t *testing.T) {
		svc := job.NewService(&fakeJobRepository{}, &fakeCompanyRepository{})

		notes := "x"
		_, err := svc.Update(ctx, userID, uuid.New().String(), job.UpdateJobRequest{Notes: &notes})

		assert.ErrorIs(t, err, joberrors.ErrJobNotFound)
	})
}

func TestJobService_ListByCompany(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	companyID := uuid.New()

	t.Run("verifies company ownership before listing", func(t *testing.T) {
		companyRepo := &fakeCompanyRepository{
			findByIDAndOwnerFn: func(ctx context.Context, uid, cid string) (*company.Company, error) {
				return &company.Company{ID: companyID, UserID: uuid.MustParse(userID), Name: "Acme"}, nil
			},
		}
		repo := &fakeJobRepository{
			findAllByCompanyAndOwner: func(ctx context.Context, uid, cid string) ([]job.Job, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, companyID.String(), cid)
				return []job.Job{{
					ID:              uuid.New(),
					CompanyID:       companyID,
					CompanyName:     "Acme",
					PositionTitle:   "Backend Engineer",
					CurrentStatus:   job.StatusApplied,
					ApplicationDate: time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
				}}, nil
			},
		}
		svc := job.NewService(repo, companyRepo)

		resp, err := svc.ListByCompany(ctx, userID, companyID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Backend Engineer", resp[0].PositionTitle)
	})

	t.Run("unowned company", func(t *testing.T) {
		svc := job.NewService(&fakeJobRepository{}, &fakeCompanyRepository{})

		_, err := svc.ListByCompany(ctx, userID, companyID.String())
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestJobService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("zero rows maps to not found", func(t *testing.T) {
		repo := &fakeJobRepository{
			deleteFn: func(ctx context.Context, uid, id string) error {
				return gorm.ErrRecordNotFound
			},
		}
		svc := job.NewService(repo, &fakeCompanyRepository{})

		err := svc.Delete(ctx, userID, uuid.New().String())
		assert.ErrorIs(t, err, joberrors.ErrJobNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := job.NewService(&fakeJobRepository{}, &fakeCompanyRepository{})

		err := svc.Delete(ctx, userID, "abc")
		assert.ErrorIs(t, err, joberrors.ErrInvalidJobID)
	})
}
