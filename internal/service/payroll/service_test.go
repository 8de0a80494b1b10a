package payroll

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/facehr/facehr-backend-go/internal/domain/employee"
	"github.com/facehr/facehr-backend-go/internal/domain/payroll"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompanyID = "co-1"

// authedContext builds a context carrying the same claims the Verifier
// middleware would have attached.
func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"company_id": testCompanyID,
		"type":       "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// ========== FAKES ==========

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id, companyID string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		if emp.CompanyID == companyID && emp.Status == employee.StatusActive {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) CountByCompanyID(_ context.Context, companyID string) (int64, error) {
	var n int64
	for _, emp := range f.employees {
		if emp.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

type fakeStructureRepo struct {
	structures map[string]payroll.SalaryStructure
}

func (f *fakeStructureRepo) GetByEmployeeID(_ context.Context, employeeID, companyID string) (payroll.SalaryStructure, error) {
	s, ok := f.structures[employeeID]
	if !ok || s.CompanyID != companyID {
		return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
	}
	return s, nil
}

func (f *fakeStructureRepo) Upsert(_ context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	if existing, ok := f.structures[structure.EmployeeID]; ok {
		structure.ID = existing.ID
	} else {
		structure.ID = uuid.NewString()
	}
	f.structures[structure.EmployeeID] = structure
	return structure, nil
}

type fakeLedger struct {
	mu      sync.Mutex
	records map[string]payroll.PayrollRecord
	upserts int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{records: make(map[string]payroll.PayrollRecord)}
}

func ledgerKey(employeeID string, month, year int) string {
	return fmt.Sprintf("%s/%d/%d", employeeID, month, year)
}

func (f *fakeLedger) Upsert(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++

	key := ledgerKey(record.EmployeeID, record.PeriodMonth, record.PeriodYear)
	if existing, ok := f.records[key]; ok {
		record.ID = existing.ID
	}
	f.records[key] = record
	return record, nil
}

func (f *fakeLedger) GetByEmployeePeriod(_ context.Context, employeeID string, month, year int, companyID string) (payroll.PayrollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, ok := f.records[ledgerKey(employeeID, month, year)]
	if !ok || record.CompanyID != companyID {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return record, nil
}

func (f *fakeLedger) ListByPeriod(_ context.Context, companyID string, month, year int) ([]payroll.PayrollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []payroll.PayrollRecord
	for _, record := range f.records {
		if record.CompanyID == companyID && record.PeriodMonth == month && record.PeriodYear == year {
			result = append(result, record)
		}
	}
	return result, nil
}

func (f *fakeLedger) PeriodSummary(_ context.Context, companyID string, month, year int) (payroll.PeriodSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	summary := payroll.PeriodSummary{PeriodMonth: month, PeriodYear: year}
	for _, record := range f.records {
		if record.CompanyID != companyID || record.PeriodMonth != month || record.PeriodYear != year {
			continue
		}
		summary.EmployeeCount++
		summary.TotalGross = summary.TotalGross.Add(record.Earnings.GrossSalary)
		summary.TotalNet = summary.TotalNet.Add(record.NetSalary)
		summary.TotalPF = summary.TotalPF.Add(record.Deductions.PF)
		summary.TotalESI = summary.TotalESI.Add(record.Deductions.ESI)
	}
	return summary, nil
}

type fakeSummarizer struct {
	summaries map[string]attendance.PeriodSummary
}

func (f *fakeSummarizer) Summarize(_ context.Context, employeeID string, month, year int, _ string) (attendance.PeriodSummary, error) {
	summary, ok := f.summaries[employeeID]
	if !ok {
		summary = attendance.PeriodSummary{TotalDays: 30}
	}
	summary.EmployeeID = employeeID
	summary.Month = month
	summary.Year = year
	return summary, nil
}

// ========== FIXTURES ==========

func testEmployee(id, code string) employee.Employee {
	return employee.Employee{
		ID:           id,
		CompanyID:    testCompanyID,
		EmployeeCode: code,
		FirstName:    "Asha",
		Status:       employee.StatusActive,
	}
}

func testStructure(employeeID string) payroll.SalaryStructure {
	s := monthlyStructure()
	s.ID = uuid.NewString()
	s.EmployeeID = employeeID
	s.CompanyID = testCompanyID
	return s
}

type testEnv struct {
	svc        payroll.PayrollService
	employees  *fakeEmployeeRepo
	structures *fakeStructureRepo
	ledger     *fakeLedger
	summaries  *fakeSummarizer
}

func newTestEnv() *testEnv {
	env := &testEnv{
		employees:  &fakeEmployeeRepo{employees: make(map[string]employee.Employee)},
		structures: &fakeStructureRepo{structures: make(map[string]payroll.SalaryStructure)},
		ledger:     newFakeLedger(),
		summaries:  &fakeSummarizer{summaries: make(map[string]attendance.PeriodSummary)},
	}
	env.svc = NewPayrollService(env.structures, env.ledger, env.employees, env.summaries, 8, 4)
	return env
}

func (env *testEnv) addEmployee(id, code string) {
	env.employees.employees[id] = testEmployee(id, code)
	env.structures.structures[id] = testStructure(id)
	env.summaries.summaries[id] = fullMonth(28)
}

// ========== TESTS ==========

func TestGenerateOne_PersistsRecord(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "EMP001")
	ctx := authedContext(t)

	resp, err := env.svc.GenerateOne(ctx, "emp-1", 4, 2025)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, 4, resp.PeriodMonth)
	assert.Equal(t, 2025, resp.PeriodYear)
	assert.Equal(t, "Asha", resp.EmployeeName)
	assert.Equal(t, "20000", resp.Earnings.GrossSalary.String())
	assert.Equal(t, "16666.67", resp.NetSalary.String())

	assert.Len(t, env.ledger.records, 1)
}

func TestGenerateOne_RerunOverwritesInPlace(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "EMP001")
	ctx := authedContext(t)

	first, err := env.svc.GenerateOne(ctx, "emp-1", 4, 2025)
	require.NoError(t, err)

	second, err := env.svc.GenerateOne(ctx, "emp-1", 4, 2025)
	require.NoError(t, err)

	// Same key, same stored row: the id survives and the amounts repeat.
	assert.Len(t, env.ledger.records, 1)
	assert.Equal(t, 2, env.ledger.upserts)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.True(t, first.Earnings.GrossSalary.Equal(second.Earnings.GrossSalary))
}

func TestGenerateOne_MissingStructure(t *testing.T) {
	env := newTestEnv()
	env.employees.employees["emp-1"] = testEmployee("emp-1", "EMP001")
	ctx := authedContext(t)

	_, err := env.svc.GenerateOne(ctx, "emp-1", 4, 2025)
	assert.ErrorIs(t, err, payroll.ErrSalaryStructureNotFound)
	assert.Empty(t, env.ledger.records)
}

func TestGenerateAll_IsolatesFailures(t *testing.T) {
	env := newTestEnv()
	for i := 1; i <= 9; i++ {
		env.addEmployee(fmt.Sprintf("emp-%d", i), fmt.Sprintf("EMP%03d", i))
	}
	// No salary structure for the tenth employee.
	env.employees.employees["emp-10"] = testEmployee("emp-10", "EMP010")
	ctx := authedContext(t)

	result, err := env.svc.GenerateAll(ctx, payroll.GeneratePayrollRequest{Month: 4, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, 9, result.Generated)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Records, 9)
	assert.Contains(t, result.Errors, "emp-10")
	assert.Len(t, env.ledger.records, 9)
}

func TestGenerateAll_ValidatesPeriod(t *testing.T) {
	env := newTestEnv()
	ctx := authedContext(t)

	_, err := env.svc.GenerateAll(ctx, payroll.GeneratePayrollRequest{Month: 13, Year: 2025})
	assert.Error(t, err)
}

func TestPreview_DoesNotWrite(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "EMP001")
	ctx := authedContext(t)

	resp, err := env.svc.Preview(ctx, "emp-1", 4, 2025)
	require.NoError(t, err)

	assert.Empty(t, resp.ID)
	assert.Equal(t, "16666.67", resp.NetSalary.String())
	assert.Empty(t, env.ledger.records)
	assert.Equal(t, 0, env.ledger.upserts)
}

func TestPreviewDemo_CalculatesInline(t *testing.T) {
	env := newTestEnv()

	req := payroll.PreviewDemoRequest{
		Structure: payroll.UpsertSalaryStructureRequest{
			BasicSalary: dec("30000"),
			TDS:         dec("1000"),
		},
		Attendance: attendance.PeriodSummary{
			TotalDays:   30,
			PresentDays: 30,
		},
	}

	resp, err := env.svc.PreviewDemo(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "30000", resp.Earnings.GrossSalary.String())
	assert.Equal(t, "29000", resp.NetSalary.String())
	assert.Empty(t, env.ledger.records)
}

func TestUpsertStructure_DefaultsMultipliers(t *testing.T) {
	env := newTestEnv()
	env.employees.employees["emp-1"] = testEmployee("emp-1", "EMP001")
	ctx := authedContext(t)

	resp, err := env.svc.UpsertStructure(ctx, "emp-1", payroll.UpsertSalaryStructureRequest{
		BasicSalary: dec("20000"),
	})
	require.NoError(t, err)

	assert.Equal(t, "1.5", resp.OTRateMultiplier.String())
	assert.Equal(t, "2", resp.OTWeekendMultiplier.String())
	assert.Equal(t, "2.5", resp.OTHolidayMultiplier.String())
	assert.Equal(t, payroll.ModeMonthly, resp.Mode)
}

func TestUpsertStructure_UnknownEmployee(t *testing.T) {
	env := newTestEnv()
	ctx := authedContext(t)

	_, err := env.svc.UpsertStructure(ctx, "ghost", payroll.UpsertSalaryStructureRequest{})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpsertStructure_RejectsNegativeAmounts(t *testing.T) {
	env := newTestEnv()
	env.employees.employees["emp-1"] = testEmployee("emp-1", "EMP001")
	ctx := authedContext(t)

	_, err := env.svc.UpsertStructure(ctx, "emp-1", payroll.UpsertSalaryStructureRequest{
		BasicSalary: dec("-1"),
	})
	assert.Error(t, err)
}

func TestPeriodSummary_AggregatesLedger(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "EMP001")
	env.addEmployee("emp-2", "EMP002")
	ctx := authedContext(t)

	_, err := env.svc.GenerateAll(ctx, payroll.GeneratePayrollRequest{Month: 4, Year: 2025})
	require.NoError(t, err)

	summary, err := env.svc.PeriodSummary(ctx, 4, 2025)
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.EmployeeCount)
	assert.Equal(t, "40000", summary.TotalGross.String())
	assert.Equal(t, "3600", summary.TotalPF.String())
}

func TestGetRecord_NotFound(t *testing.T) {
	env := newTestEnv()
	ctx := authedContext(t)

	_, err := env.svc.GetRecord(ctx, "emp-1", 4, 2025)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}
