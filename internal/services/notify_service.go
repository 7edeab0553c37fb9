package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/store"
	"google.golang.org/api/gmail/v1"
)

// NotifyService sends candidates a courtesy email when their application
// moves to a new stage. It consumes the pipeline engine's change feed;
// delivery is best-effort and never blocks or fails a transition.
type NotifyService struct {
	Store       store.Store
	GmailClient *gmail.Service
}

func NewNotifyService(st store.Store, gmailSvc *gmail.Service) *NotifyService {
	return &NotifyService{
		Store:       st,
		GmailClient: gmailSvc,
	}
}

// StartListener drains the event feed in the background.
func (s *NotifyService) StartListener(events <-chan models.StageChangeEvent) {
	if s.GmailClient == nil {
		log.Println("⚠️ Stage-change notifications disabled (no Gmail client). Check credentials.")
		return
	}
	go func() {
		for ev := range events {
			s.handleEvent(ev)
		}
	}()
}

func (s *NotifyService) handleEvent(ev models.StageChangeEvent) {
	// Timeout Context: Prevent hanging forever on a slow store or API
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	app, err := s.Store.ApplicationByID(ctx, ev.ApplicationID)
	if err != nil {
		log.Printf("❌ Notify: load application %s failed: %v", ev.ApplicationID, err)
		return
	}
	candidate, err := s.Store.CandidateByID(ctx, app.CandidateID)
	if err != nil {
		log.Printf("❌ Notify: load candidate %s failed: %v", app.CandidateID, err)
		return
	}
	if candidate.Email == "" {
		return // nothing to send to
	}
	job, err := s.Store.JobByID(ctx, app.JobID)
	if err != nil {
		log.Printf("❌ Notify: load job %s failed: %v", app.JobID, err)
		return
	}
	stage, err := s.Store.StageByID(ctx, ev.ToStageID)
	if err != nil {
		// Stage may have been deleted between the move and the send; skip
		// rather than email a dangling stage name.
		log.Printf("⚠️ Notify: stage %s no longer exists, skipping email", ev.ToStageID)
		return
	}

	if err := s.sendStageEmail(ctx, candidate, job, stage); err != nil {
		log.Printf("❌ Notify: send to %s failed: %v", candidate.Email, err)
		return
	}
	log.Printf("📧 Notified %s: %q moved to stage %q", candidate.Email, job.Title, stage.Name)
}

func (s *NotifyService) sendStageEmail(ctx context.Context, candidate *models.Candidate, job *models.Job, stage *models.JobStage) error {
	subject := fmt.Sprintf("Update on your application for %s", job.Title)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour application for %s has moved to the %q step of our hiring process.\r\n\r\nWe will be in touch with next steps.\r\n",
		candidate.FullName, job.Title, stage.Name,
	)
	raw := fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		candidate.Email, subject, body)

	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString([]byte(raw))}
	_, err := s.GmailClient.Users.Messages.Send("me", msg).Context(ctx).Do()
	return err
}
