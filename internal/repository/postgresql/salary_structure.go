package postgresql

import (
	"context"
	"fmt"

	"github.com/facehr/facehr-backend-go/internal/domain/payroll"
	"github.com/facehr/facehr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryStructureRepository struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepository{db: db}
}

const structureColumns = `
	id, employee_id, company_id,
	basic_salary, hra, conveyance_allowance, medical_allowance, special_allowance,
	education_allowance, other_allowance, bonus, incentive,
	pf_employee, pf_employer, esi_employee, esi_employer, professional_tax, tds,
	is_pf_applicable, is_esi_applicable,
	is_hourly_based, hourly_rate, contract_rate_per_day,
	ot_rate_multiplier, ot_weekend_multiplier, ot_holiday_multiplier,
	created_at, updated_at
`

func scanStructure(row pgx.Row) (payroll.SalaryStructure, error) {
	var s payroll.SalaryStructure
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.CompanyID,
		&s.BasicSalary, &s.HRA, &s.ConveyanceAllowance, &s.MedicalAllowance, &s.SpecialAllowance,
		&s.EducationAllowance, &s.OtherAllowance, &s.Bonus, &s.Incentive,
		&s.PFEmployee, &s.PFEmployer, &s.ESIEmployee, &s.ESIEmployer, &s.ProfessionalTax, &s.TDS,
		&s.IsPFApplicable, &s.IsESIApplicable,
		&s.IsHourlyBased, &s.HourlyRate, &s.ContractRatePerDay,
		&s.OTRateMultiplier, &s.OTWeekendMultiplier, &s.OTHolidayMultiplier,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *salaryStructureRepository) GetByEmployeeID(ctx context.Context, employeeID string, companyID string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + structureColumns + `
		FROM salary_structures
		WHERE employee_id = $1 AND company_id = $2`

	s, err := scanStructure(q.QueryRow(ctx, query, employeeID, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
		}
		return payroll.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	return s, nil
}

func (r *salaryStructureRepository) Upsert(ctx context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (
			employee_id, company_id,
			basic_salary, hra, conveyance_allowance, medical_allowance, special_allowance,
			education_allowance, other_allowance, bonus, incentive,
			pf_employee, pf_employer, esi_employee, esi_employer, professional_tax, tds,
			is_pf_applicable, is_esi_applicable,
			is_hourly_based, hourly_rate, contract_rate_per_day,
			ot_rate_multiplier, ot_weekend_multiplier, ot_holiday_multiplier
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25)
		ON CONFLICT (employee_id) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			hra = EXCLUDED.hra,
			conveyance_allowance = EXCLUDED.conveyance_allowance,
			medical_allowance = EXCLUDED.medical_allowance,
			special_allowance = EXCLUDED.special_allowance,
			education_allowance = EXCLUDED.education_allowance,
			other_allowance = EXCLUDED.other_allowance,
			bonus = EXCLUDED.bonus,
			incentive = EXCLUDED.incentive,
			pf_employee = EXCLUDED.pf_employee,
			pf_employer = EXCLUDED.pf_employer,
			esi_employee = EXCLUDED.esi_employee,
			esi_employer = EXCLUDED.esi_employer,
			professional_tax = EXCLUDED.professional_tax,
			tds = EXCLUDED.tds,
			is_pf_applicable = EXCLUDED.is_pf_applicable,
			is_esi_applicable = EXCLUDED.is_esi_applicable,
			is_hourly_based = EXCLUDED.is_hourly_based,
			hourly_rate = EXCLUDED.hourly_rate,
			contract_rate_per_day = EXCLUDED.contract_rate_per_day,
			ot_rate_multiplier = EXCLUDED.ot_rate_multiplier,
			ot_weekend_multiplier = EXCLUDED.ot_weekend_multiplier,
			ot_holiday_multiplier = EXCLUDED.ot_holiday_multiplier,
			updated_at = NOW()
		RETURNING ` + structureColumns

	s, err := scanStructure(q.QueryRow(ctx, query,
		structure.EmployeeID, structure.CompanyID,
		structure.BasicSalary, structure.HRA, structure.ConveyanceAllowance, structure.MedicalAllowance, structure.SpecialAllowance,
		structure.EducationAllowance, structure.OtherAllowance, structure.Bonus, structure.Incentive,
		structure.PFEmployee, structure.PFEmployer, structure.ESIEmployee, structure.ESIEmployer, structure.ProfessionalTax, structure.TDS,
		structure.IsPFApplicable, structure.IsESIApplicable,
		structure.IsHourlyBased, structure.HourlyRate, structure.ContractRatePerDay,
		structure.OTRateMultiplier, structure.OTWeekendMultiplier, structure.OTHolidayMultiplier,
	))
	if err != nil {
		return payroll.SalaryStructure{}, fmt.Errorf("failed to upsert salary structure: %w", err)
	}

	return s, nil
}
