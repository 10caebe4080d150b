package service

import (
	"testing"
	"time"

	"github.com/fixwise/fixwise/internal/api/dto"
	"github.com/fixwise/fixwise/internal/domain/job"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/testutil"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     InvoiceService
	jobRepo     *testutil.InMemoryJobStore
	invoiceRepo *testutil.InMemoryInvoiceStore
	testData    struct {
		job *job.Job
	}
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *InvoiceServiceSuite) setupService() {
	s.jobRepo = s.GetStores().JobRepo.(*testutil.InMemoryJobStore)
	s.invoiceRepo = s.GetStores().InvoiceRepo.(*testutil.InMemoryInvoiceStore)

	settingsService := NewSettingsService(
		s.GetStores().SettingsRepo, s.GetConfig(), s.GetClock(), s.GetLogger())

	s.service = NewInvoiceService(
		s.invoiceRepo,
		s.jobRepo,
		settingsService,
		s.GetIssuer(),
		s.GetClock(),
		s.GetLogger(),
	)
}

func (s *InvoiceServiceSuite) setupTestData() {
	s.testData.job = &job.Job{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_JOB),
		ClientName:   "Noa Friedman",
		ClientPhone:  "+972-52-555-0201",
		Title:        "Kitchen faucet dripping",
		Location:     "12 Herzl St, Tel Aviv",
		JobStatus:    types.JobStatusCompleted,
		HandymanName: lo.ToPtr("Avi Cohen"),
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.jobRepo.Create(s.GetContext(), s.testData.job))
}

func (s *InvoiceServiceSuite) createRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		LineItems: []dto.CreateLineItemRequest{
			{Description: "Labor", Quantity: 1, UnitPrice: decimal.NewFromInt(350)},
			{Description: "Parts", Quantity: 2, UnitPrice: decimal.NewFromInt(150)},
		},
	}
}

func (s *InvoiceServiceSuite) TestCreateInvoiceForJob() {
	resp, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)
	s.NotNil(resp)

	// totals with the default 17% VAT
	s.True(resp.Subtotal.Equal(decimal.RequireFromString("650")), "subtotal %s", resp.Subtotal)
	s.True(resp.VatAmount.Equal(decimal.RequireFromString("110.50")), "vat %s", resp.VatAmount)
	s.True(resp.Total.Equal(decimal.RequireFromString("760.50")), "total %s", resp.Total)
	s.Equal(types.InvoiceStatusDraft, resp.InvoiceStatus)
	s.Equal("ILS", resp.Currency)
	s.Nil(resp.PaidAt)
	s.NotEmpty(resp.InvoiceNumber)

	// denormalized job snapshot
	s.Equal("Noa Friedman", resp.JobSnapshot.ClientName)
	s.Equal("Kitchen faucet dripping", resp.JobSnapshot.JobTitle)
	s.Equal("Avi Cohen", resp.JobSnapshot.HandymanName)

	// back-reference on the job
	j, err := s.jobRepo.Get(s.GetContext(), s.testData.job.ID)
	s.NoError(err)
	s.NotNil(j.InvoiceID)
	s.Equal(resp.ID, *j.InvoiceID)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceForJobWithoutVat() {
	req := s.createRequest()
	req.VatEnabled = lo.ToPtr(false)

	resp, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, req)
	s.NoError(err)
	s.True(resp.VatAmount.IsZero())
	s.True(resp.Total.Equal(decimal.RequireFromString("650")))
}

func (s *InvoiceServiceSuite) TestCreateInvoiceForMissingJob() {
	resp, err := s.service.CreateInvoiceForJob(s.GetContext(), "job_missing", s.createRequest())
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestCreateSecondInvoiceForJobConflicts() {
	first, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)

	second, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.Error(err)
	s.Nil(second)
	s.True(ierr.IsAlreadyExists(err))

	// the first invoice is untouched and remains the only one
	count, err := s.invoiceRepo.Count(s.GetContext(), types.NewNoLimitInvoiceFilter())
	s.NoError(err)
	s.Equal(1, count)

	j, err := s.jobRepo.Get(s.GetContext(), s.testData.job.ID)
	s.NoError(err)
	s.Equal(first.ID, *j.InvoiceID)
}

func (s *InvoiceServiceSuite) TestCreateConflictsEvenWithoutBackReference() {
	first, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)

	// drop the back-reference, as if the job write after invoice creation
	// never landed; the invoice collection still holds the truth
	j, err := s.jobRepo.Get(s.GetContext(), s.testData.job.ID)
	s.NoError(err)
	j.InvoiceID = nil
	s.NoError(s.jobRepo.Update(s.GetContext(), j))

	second, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.Error(err)
	s.Nil(second)
	s.True(ierr.IsAlreadyExists(err))

	count, err := s.invoiceRepo.Count(s.GetContext(), types.NewNoLimitInvoiceFilter())
	s.NoError(err)
	s.Equal(1, count)
	s.NotEmpty(first.ID)
}

func (s *InvoiceServiceSuite) TestBackReferenceFailureIsRecoverable() {
	s.jobRepo.FailNextUpdate = true

	resp, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsInconsistentState(err))

	// the invoice document was written before the job update failed
	inv, err := s.invoiceRepo.GetByJobID(s.GetContext(), s.testData.job.ID)
	s.NoError(err)

	j, err := s.jobRepo.Get(s.GetContext(), s.testData.job.ID)
	s.NoError(err)
	s.Nil(j.InvoiceID)

	// reconcile repairs the missing back-reference
	report, err := s.service.ReconcileLinks(s.GetContext())
	s.NoError(err)
	s.Equal(1, report.Scanned)
	s.Equal([]string{inv.ID}, report.Repaired)
	s.Empty(report.Conflict)

	j, err = s.jobRepo.Get(s.GetContext(), s.testData.job.ID)
	s.NoError(err)
	s.NotNil(j.InvoiceID)
	s.Equal(inv.ID, *j.InvoiceID)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceValidationWritesNothing() {
	req := dto.CreateInvoiceRequest{
		LineItems: []dto.CreateLineItemRequest{
			{Description: "", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
	}

	resp, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, req)
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))

	count, err := s.invoiceRepo.Count(s.GetContext(), types.NewNoLimitInvoiceFilter())
	s.NoError(err)
	s.Equal(0, count)

	j, err := s.jobRepo.Get(s.GetContext(), s.testData.job.ID)
	s.NoError(err)
	s.Nil(j.InvoiceID)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceRejectsNegativeUnitPrice() {
	req := dto.CreateInvoiceRequest{
		LineItems: []dto.CreateLineItemRequest{
			{Description: "Refund?", Quantity: 1, UnitPrice: decimal.NewFromInt(-50)},
		},
	}

	_, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestTransitionDraftDirectlyToPaid() {
	inv, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)

	paid, err := s.service.TransitionStatus(s.GetContext(), inv.ID, types.InvoiceStatusPaid)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, paid.InvoiceStatus)
	s.NotNil(paid.PaidAt)
	s.Equal(s.GetClock().Now(), *paid.PaidAt)
}

func (s *InvoiceServiceSuite) TestPaidIsTerminal() {
	inv, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)
	_, err = s.service.TransitionStatus(s.GetContext(), inv.ID, types.InvoiceStatusPaid)
	s.NoError(err)

	for _, target := range []types.InvoiceStatus{
		types.InvoiceStatusDraft,
		types.InvoiceStatusSent,
		types.InvoiceStatusOutstanding,
	} {
		_, err := s.service.TransitionStatus(s.GetContext(), inv.ID, target)
		s.Error(err, "paid -> %s must be rejected", target)
		s.True(ierr.IsInvalidOperation(err))
	}
}

func (s *InvoiceServiceSuite) TestRepeatedPaidTransitionKeepsPaidAt() {
	inv, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)

	first, err := s.service.TransitionStatus(s.GetContext(), inv.ID, types.InvoiceStatusPaid)
	s.NoError(err)

	s.GetClock().Advance(2 * time.Hour)

	second, err := s.service.TransitionStatus(s.GetContext(), inv.ID, types.InvoiceStatusPaid)
	s.NoError(err)
	s.Equal(*first.PaidAt, *second.PaidAt)
}

func (s *InvoiceServiceSuite) TestTransitionRejectsUnknownStatus() {
	inv, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)

	_, err = s.service.TransitionStatus(s.GetContext(), inv.ID, types.InvoiceStatus("VOID"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestIssuePaymentLinkMovesDraftToSent() {
	inv, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)

	sent, err := s.service.IssuePaymentLink(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusSent, sent.InvoiceStatus)
	s.NotNil(sent.PaymentURL)
	s.NotNil(sent.PaymentSessionID)
	s.Contains(*sent.PaymentURL, inv.ID)
}

func (s *InvoiceServiceSuite) TestIssuerFailureLeavesInvoiceUntouched() {
	inv, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)

	s.GetIssuer().FailNext = true
	_, err = s.service.IssuePaymentLink(s.GetContext(), inv.ID)
	s.Error(err)
	s.True(ierr.IsExternalService(err))

	stored, err := s.invoiceRepo.Get(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusDraft, stored.InvoiceStatus)
	s.Nil(stored.PaymentURL)
}

func (s *InvoiceServiceSuite) TestIssuePaymentLinkOnSentRegeneratesLink() {
	inv, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)

	first, err := s.service.IssuePaymentLink(s.GetContext(), inv.ID)
	s.NoError(err)
	second, err := s.service.IssuePaymentLink(s.GetContext(), inv.ID)
	s.NoError(err)

	s.Equal(types.InvoiceStatusSent, second.InvoiceStatus)
	s.NotEqual(*first.PaymentSessionID, *second.PaymentSessionID)
}

func (s *InvoiceServiceSuite) TestConfirmPaymentIsIdempotent() {
	inv, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)

	first, err := s.service.ConfirmPayment(s.GetContext(), inv.ID, "cs_test_123")
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, first.InvoiceStatus)
	s.NotNil(first.PaidAt)
	s.Equal("cs_test_123", *first.PaymentSessionID)

	s.GetClock().Advance(30 * time.Minute)

	second, err := s.service.ConfirmPayment(s.GetContext(), inv.ID, "cs_test_123")
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, second.InvoiceStatus)
	s.Equal(*first.PaidAt, *second.PaidAt)
}

func (s *InvoiceServiceSuite) TestListInvoicesByStatus() {
	inv, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)
	_, err = s.service.ConfirmPayment(s.GetContext(), inv.ID, "")
	s.NoError(err)

	filter := types.NewInvoiceFilter()
	filter.InvoiceStatus = []types.InvoiceStatus{types.InvoiceStatusPaid}
	paid, err := s.service.ListInvoices(s.GetContext(), filter)
	s.NoError(err)
	s.Len(paid.Items, 1)

	filter = types.NewInvoiceFilter()
	filter.InvoiceStatus = []types.InvoiceStatus{types.InvoiceStatusDraft}
	drafts, err := s.service.ListInvoices(s.GetContext(), filter)
	s.NoError(err)
	s.Len(drafts.Items, 0)
}

func (s *InvoiceServiceSuite) TestReconcileRepairsMissingBackReference() {
	inv, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)

	// simulate a crashed create: drop the back-reference from the job
	j, err := s.jobRepo.Get(s.GetContext(), s.testData.job.ID)
	s.NoError(err)
	j.InvoiceID = nil
	s.NoError(s.jobRepo.Update(s.GetContext(), j))

	report, err := s.service.ReconcileLinks(s.GetContext())
	s.NoError(err)
	s.Equal(1, report.Scanned)
	s.Equal([]string{inv.ID}, report.Repaired)
	s.Empty(report.Conflict)

	repaired, err := s.jobRepo.Get(s.GetContext(), s.testData.job.ID)
	s.NoError(err)
	s.Equal(inv.ID, *repaired.InvoiceID)
}

func (s *InvoiceServiceSuite) TestReconcileReportsConflicts() {
	inv, err := s.service.CreateInvoiceForJob(s.GetContext(), s.testData.job.ID, s.createRequest())
	s.NoError(err)

	// job points at some other invoice
	j, err := s.jobRepo.Get(s.GetContext(), s.testData.job.ID)
	s.NoError(err)
	j.InvoiceID = lo.ToPtr("inv_other")
	s.NoError(s.jobRepo.Update(s.GetContext(), j))

	report, err := s.service.ReconcileLinks(s.GetContext())
	s.NoError(err)
	s.Empty(report.Repaired)
	s.Equal([]string{inv.ID}, report.Conflict)

	// job deleted entirely: the invoice is orphaned but reported
	s.NoError(s.jobRepo.Delete(s.GetContext(), s.testData.job.ID))
	report, err = s.service.ReconcileLinks(s.GetContext())
	s.NoError(err)
	s.Equal([]string{inv.ID}, report.Conflict)
}
