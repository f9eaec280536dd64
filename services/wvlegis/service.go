package wvlegis

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	scraper "wvlegis-backend/lib/scrapers/wvlegis"
	"wvlegis-backend/services/wvlegis/db"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	_ "modernc.org/sqlite"
)

var tracer = otel.Tracer("services/wvlegis")

func unixUTC(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

type Service struct {
	db      *sql.DB
	qry     *db.Queries
	scraper *scraper.Scraper
}

func NewService(database *sql.DB, sc *scraper.Scraper) Service {
	return Service{
		db:      database,
		qry:     db.New(database),
		scraper: sc,
	}
}

// SaveBill replaces any previously stored copy of the bill and writes
// the scraped record in a single transaction.
func (s Service) SaveBill(ctx context.Context, bill *scraper.Bill, runID string) error {
	ctx, span := tracer.Start(ctx, "SaveBill")
	defer span.End()

	span.SetAttributes(
		attribute.String("session", bill.Session),
		attribute.String("bill_id", bill.ID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	existing, err := txqry.GetBill(ctx, db.GetBillParams{
		Session: bill.Session,
		Chamber: string(bill.Chamber),
		BillID:  bill.ID,
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if err == nil {
		err = s.deleteBill(ctx, txqry, existing.ID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	billRow, err := txqry.CreateBill(ctx, db.CreateBillParams{
		Session:   bill.Session,
		Chamber:   string(bill.Chamber),
		BillID:    bill.ID,
		Title:     bill.Title,
		BillType:  string(bill.Type),
		ScrapeRun: runID,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, subject := range bill.Subjects {
		err := txqry.CreateBillSubject(ctx, db.CreateBillSubjectParams{
			Bill:    billRow,
			Subject: subject,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	for _, sponsor := range bill.Sponsors {
		err := txqry.CreateBillSponsor(ctx, db.CreateBillSponsorParams{
			Bill:    billRow,
			Sponsor: sponsor,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	for _, action := range bill.Actions {
		err := txqry.CreateBillAction(ctx, db.CreateBillActionParams{
			Bill:       billRow,
			Actor:      string(action.Actor),
			Action:     action.Text,
			Date:       action.Date.Unix(),
			ActionType: string(action.Type),
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	for _, version := range bill.Versions {
		err := txqry.CreateBillVersion(ctx, db.CreateBillVersionParams{
			Bill:     billRow,
			Name:     version.Name,
			Url:      version.URL,
			Mimetype: string(version.Mimetype),
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	for _, vote := range bill.Votes {
		err := s.saveVote(ctx, txqry, billRow, vote)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s Service) deleteBill(ctx context.Context, qry *db.Queries, billRow int64) error {
	err := qry.DeleteBillSubjects(ctx, billRow)
	if err != nil {
		return err
	}
	err = qry.DeleteBillSponsors(ctx, billRow)
	if err != nil {
		return err
	}
	err = qry.DeleteBillActions(ctx, billRow)
	if err != nil {
		return err
	}
	err = qry.DeleteBillVersions(ctx, billRow)
	if err != nil {
		return err
	}
	err = qry.DeleteVoteMembers(ctx, billRow)
	if err != nil {
		return err
	}
	err = qry.DeleteBillVotes(ctx, billRow)
	if err != nil {
		return err
	}
	return qry.DeleteBill(ctx, billRow)
}

func (s Service) saveVote(ctx context.Context, qry *db.Queries, billRow int64, vote *scraper.Vote) error {
	passed := int64(0)
	if vote.Passed {
		passed = 1
	}
	voteRow, err := qry.CreateBillVote(ctx, db.CreateBillVoteParams{
		Bill:       billRow,
		Chamber:    string(vote.Chamber),
		Date:       vote.Date.Unix(),
		Motion:     vote.Motion,
		Passed:     passed,
		YesCount:   int64(vote.YesCount),
		NoCount:    int64(vote.NoCount),
		OtherCount: int64(vote.OtherCount),
		Source:     vote.Source,
	})
	if err != nil {
		return err
	}

	categories := []struct {
		name    string
		members []string
	}{
		{"yes", vote.YesVotes},
		{"no", vote.NoVotes},
		{"other", vote.OtherVotes},
	}
	for _, category := range categories {
		for _, name := range category.members {
			err := qry.CreateVoteMember(ctx, db.CreateVoteMemberParams{
				Vote:     voteRow,
				Category: category.name,
				Name:     name,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

type ScrapeReport struct {
	RunID    string
	Bills    int
	Versions int
	Actions  int
	Votes    int
	Failed   int
}

// ScrapeChamber scrapes every bill and resolution originating in the
// given chamber and persists them. Bills that fail to scrape or save
// are logged and counted, they do not abort the run.
func (s Service) ScrapeChamber(ctx context.Context, session string, chamber scraper.Chamber) (ScrapeReport, error) {
	ctx, span := tracer.Start(ctx, "ScrapeChamber")
	defer span.End()

	span.SetAttributes(
		attribute.String("session", session),
		attribute.String("chamber", string(chamber)),
	)

	runID, err := random.String(8)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ScrapeReport{}, err
	}
	report := ScrapeReport{RunID: runID}

	bills, err := s.scraper.ScrapeChamber(ctx, session, chamber)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return report, err
	}

	for _, bill := range bills {
		err := s.SaveBill(ctx, bill, runID)
		if err != nil {
			slog.WarnContext(ctx, "failed to save bill",
				"bill", bill.ID, "err", err)
			report.Failed++
			continue
		}
		report.Bills++
		report.Versions += len(bill.Versions)
		report.Actions += len(bill.Actions)
		report.Votes += len(bill.Votes)
	}
	return report, nil
}

// GetBill loads a stored bill back into its scraped form.
func (s Service) GetBill(ctx context.Context, session string, chamber scraper.Chamber, billID string) (*scraper.Bill, error) {
	ctx, span := tracer.Start(ctx, "GetBill")
	defer span.End()

	row, err := s.qry.GetBill(ctx, db.GetBillParams{
		Session: session,
		Chamber: string(chamber),
		BillID:  billID,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	bill := &scraper.Bill{
		Session: row.Session,
		Chamber: scraper.Chamber(row.Chamber),
		ID:      row.BillID,
		Title:   row.Title,
		Type:    scraper.BillType(row.BillType),
	}

	bill.Subjects, err = s.qry.ListBillSubjects(ctx, row.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	bill.Sponsors, err = s.qry.ListBillSponsors(ctx, row.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	actions, err := s.qry.ListBillActions(ctx, row.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	for _, action := range actions {
		bill.Actions = append(bill.Actions, scraper.Action{
			Actor: scraper.Chamber(action.Actor),
			Text:  action.Action,
			Date:  unixUTC(action.Date),
			Type:  scraper.ActionType(action.ActionType),
		})
	}

	versions, err := s.qry.ListBillVersions(ctx, row.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	for _, version := range versions {
		bill.Versions = append(bill.Versions, scraper.Version{
			Name:     version.Name,
			URL:      version.Url,
			Mimetype: scraper.Mimetype(version.Mimetype),
		})
	}

	votes, err := s.qry.ListBillVotes(ctx, row.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	for _, voteRow := range votes {
		vote := &scraper.Vote{
			Chamber:    scraper.Chamber(voteRow.Chamber),
			Date:       unixUTC(voteRow.Date),
			Motion:     voteRow.Motion,
			Passed:     voteRow.Passed != 0,
			YesCount:   int(voteRow.YesCount),
			NoCount:    int(voteRow.NoCount),
			OtherCount: int(voteRow.OtherCount),
			Source:     voteRow.Source,
		}
		members, err := s.qry.ListVoteMembers(ctx, voteRow.ID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		for _, member := range members {
			switch member.Category {
			case "yes":
				vote.YesVotes = append(vote.YesVotes, member.Name)
			case "no":
				vote.NoVotes = append(vote.NoVotes, member.Name)
			default:
				vote.OtherVotes = append(vote.OtherVotes, member.Name)
			}
		}
		bill.Votes = append(bill.Votes, vote)
	}

	return bill, nil
}

// ListBills returns the stored bills for a session and chamber.
func (s Service) ListBills(ctx context.Context, session string, chamber scraper.Chamber) ([]db.Bill, error) {
	ctx, span := tracer.Start(ctx, "ListBills")
	defer span.End()

	rows, err := s.qry.ListBills(ctx, db.ListBillsParams{
		Session: session,
		Chamber: string(chamber),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return rows, nil
}
