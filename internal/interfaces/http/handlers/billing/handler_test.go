package billing

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billingdto "fixwise/internal/application/billing/dto"
	"fixwise/internal/application/billing/usecases"
	"fixwise/internal/interfaces/http/handlers/testutil"
	"fixwise/internal/shared/errors"
)

type mockCreateInvoiceUC struct {
	gotCmd usecases.CreateInvoiceCommand
	result *usecases.CreateInvoiceResult
	err    error
}

func (m *mockCreateInvoiceUC) Execute(_ context.Context, cmd usecases.CreateInvoiceCommand) (*usecases.CreateInvoiceResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockPayInvoiceUC struct {
	gotCmd usecases.PayInvoiceCommand
	result *usecases.PayInvoiceResult
	err    error
}

func (m *mockPayInvoiceUC) Execute(_ context.Context, cmd usecases.PayInvoiceCommand) (*usecases.PayInvoiceResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetInvoiceUC struct {
	result *billingdto.InvoiceDTO
	err    error
}

func (m *mockGetInvoiceUC) Execute(_ context.Context, _ usecases.GetInvoiceQuery) (*billingdto.InvoiceDTO, error) {
	return m.result, m.err
}

type mockListInvoicesUC struct {
	gotQuery usecases.ListInvoicesQuery
	result   *usecases.ListInvoicesResult
	err      error
}

func (m *mockListInvoicesUC) Execute(_ context.Context, query usecases.ListInvoicesQuery) (*usecases.ListInvoicesResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockListWorkOrdersUC struct {
	result []*billingdto.WorkOrderDTO
	err    error
}

func (m *mockListWorkOrdersUC) Execute(_ context.Context, _ usecases.ListWorkOrdersQuery) ([]*billingdto.WorkOrderDTO, error) {
	return m.result, m.err
}

type testDeps struct {
	createInvoiceUC  usecases.CreateInvoiceExecutor
	payInvoiceUC     usecases.PayInvoiceExecutor
	getInvoiceUC     usecases.GetInvoiceExecutor
	listInvoicesUC   usecases.ListInvoicesExecutor
	listWorkOrdersUC usecases.ListWorkOrdersExecutor
}

func newTestBillingHandler(deps testDeps) *BillingHandler {
	return NewBillingHandler(
		deps.createInvoiceUC,
		deps.payInvoiceUC,
		deps.getInvoiceUC,
		deps.listInvoicesUC,
		deps.listWorkOrdersUC,
	)
}

func TestBillingHandler_CreateInvoice_Success(t *testing.T) {
	mockUC := &mockCreateInvoiceUC{
		result: &usecases.CreateInvoiceResult{
			Invoice: &billingdto.InvoiceDTO{ID: 1, InvoiceNumber: "INV-2026-000001", TicketID: 4, Total: 365},
		},
	}
	handler := newTestBillingHandler(testDeps{createInvoiceUC: mockUC})

	reqBody := CreateInvoiceRequest{TicketID: 4, Tax: 25, Notes: "net 30"}
	c, w := testutil.NewTestContext(http.MethodPost, "/invoices", reqBody)
	testutil.SetActorContext(c, testutil.VendorAdminActor(21, 11))

	handler.CreateInvoice(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(4), mockUC.gotCmd.TicketID)
	assert.Equal(t, 25.0, mockUC.gotCmd.Tax)
}

func TestBillingHandler_CreateInvoice_TicketNotReady(t *testing.T) {
	mockUC := &mockCreateInvoiceUC{err: errors.NewConflictError("ticket is not ready for billing")}
	handler := newTestBillingHandler(testDeps{createInvoiceUC: mockUC})

	reqBody := CreateInvoiceRequest{TicketID: 4}
	c, w := testutil.NewTestContext(http.MethodPost, "/invoices", reqBody)
	testutil.SetActorContext(c, testutil.VendorAdminActor(21, 11))

	handler.CreateInvoice(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBillingHandler_GetInvoice_InvalidID(t *testing.T) {
	handler := newTestBillingHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/invoices/abc", nil)
	testutil.SetActorContext(c, testutil.OrgAdminActor(7, 3))
	testutil.SetURLParam(c, "id", "abc")

	handler.GetInvoice(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillingHandler_ListInvoices_StatusFilter(t *testing.T) {
	mockUC := &mockListInvoicesUC{
		result: &usecases.ListInvoicesResult{
			Invoices: []*billingdto.InvoiceDTO{{ID: 1, Status: "pending"}},
			Total:    1,
			Page:     1,
			PageSize: 20,
		},
	}
	handler := newTestBillingHandler(testDeps{listInvoicesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/invoices", nil)
	testutil.SetActorContext(c, testutil.OrgAdminActor(7, 3))
	testutil.SetQueryParams(c, map[string]string{"status": "pending", "page": "1", "page_size": "20"})

	handler.ListInvoices(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotQuery.Status)
	assert.Equal(t, "pending", *mockUC.gotQuery.Status)
	assert.Equal(t, 20, mockUC.gotQuery.PageSize)
}

func TestBillingHandler_PayInvoice_Success(t *testing.T) {
	mockUC := &mockPayInvoiceUC{
		result: &usecases.PayInvoiceResult{
			Invoice: &billingdto.InvoiceDTO{ID: 1, Status: "paid", PaymentMethod: "check", CheckNumber: "1042"},
		},
	}
	handler := newTestBillingHandler(testDeps{payInvoiceUC: mockUC})

	reqBody := PayInvoiceRequest{PaymentMethod: "check", CheckNumber: "1042"}
	c, w := testutil.NewTestContext(http.MethodPost, "/invoices/1/pay", reqBody)
	testutil.SetActorContext(c, testutil.OrgAdminActor(7, 3))
	testutil.SetURLParam(c, "id", "1")

	handler.PayInvoice(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), mockUC.gotCmd.InvoiceID)
	assert.Equal(t, "check", mockUC.gotCmd.PaymentMethod)
}

func TestBillingHandler_PayInvoice_AlreadyPaid(t *testing.T) {
	mockUC := &mockPayInvoiceUC{err: errors.NewConflictError("invoice is already paid")}
	handler := newTestBillingHandler(testDeps{payInvoiceUC: mockUC})

	reqBody := PayInvoiceRequest{PaymentMethod: "card"}
	c, w := testutil.NewTestContext(http.MethodPost, "/invoices/1/pay", reqBody)
	testutil.SetActorContext(c, testutil.OrgAdminActor(7, 3))
	testutil.SetURLParam(c, "id", "1")

	handler.PayInvoice(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBillingHandler_ListWorkOrders_Success(t *testing.T) {
	mockUC := &mockListWorkOrdersUC{
		result: []*billingdto.WorkOrderDTO{{ID: 3, TicketID: 4, TotalCost: 340}},
	}
	handler := newTestBillingHandler(testDeps{listWorkOrdersUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/4/work-orders", nil)
	testutil.SetActorContext(c, testutil.OrgAdminActor(7, 3))
	testutil.SetURLParam(c, "id", "4")

	handler.ListWorkOrders(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
