// cmd/migrate/main.go
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/AbuAli85/contract-management-backend/internal/config"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var schema = `
CREATE EXTENSION IF NOT EXISTS citext;

CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email CITEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS profiles (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL UNIQUE REFERENCES users(id),
	email CITEXT,
	full_name TEXT,
	avatar_url TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS holding_groups (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name_en TEXT,
	name_ar TEXT,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS parties (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	contact_email CITEXT,
	contact_person TEXT,
	type TEXT NOT NULL DEFAULT 'Generic',
	role TEXT,
	status TEXT NOT NULL DEFAULT 'active',
	tags TEXT[],
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS companies (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	logo_url TEXT,
	group_id UUID REFERENCES holding_groups(id),
	party_id UUID REFERENCES parties(id),
	owner_id UUID NOT NULL REFERENCES users(id),
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_companies_owner ON companies(owner_id);
CREATE INDEX IF NOT EXISTS idx_companies_party ON companies(party_id);

CREATE TABLE IF NOT EXISTS company_members (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	company_id UUID NOT NULL REFERENCES companies(id),
	user_id UUID NOT NULL REFERENCES users(id),
	role TEXT NOT NULL DEFAULT 'member',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE(company_id, user_id)
);
CREATE INDEX IF NOT EXISTS idx_company_members_user ON company_members(user_id);

CREATE TABLE IF NOT EXISTS holding_group_members (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	group_id UUID NOT NULL REFERENCES holding_groups(id),
	member_type TEXT NOT NULL,
	member_id UUID NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE(group_id, member_type, member_id)
);
CREATE INDEX IF NOT EXISTS idx_group_members_member ON holding_group_members(member_type, member_id);

CREATE TABLE IF NOT EXISTS employer_employees (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	company_id UUID NOT NULL REFERENCES companies(id),
	full_name TEXT,
	status TEXT NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_employees_company ON employer_employees(company_id);

CREATE TABLE IF NOT EXISTS promoters (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employer_id UUID NOT NULL REFERENCES parties(id),
	full_name TEXT,
	email CITEXT,
	status TEXT NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_promoters_employer ON promoters(employer_id);

CREATE TABLE IF NOT EXISTS employee_attendances (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id UUID NOT NULL REFERENCES employer_employees(id),
	work_date DATE NOT NULL,
	check_in_at TIMESTAMPTZ,
	check_out_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE(employee_id, work_date)
);

CREATE TABLE IF NOT EXISTS employee_tasks (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id UUID NOT NULL REFERENCES employer_employees(id),
	title TEXT,
	status TEXT NOT NULL DEFAULT 'open',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_tasks_employee ON employee_tasks(employee_id);

CREATE TABLE IF NOT EXISTS leave_requests (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	company_id UUID NOT NULL REFERENCES companies(id),
	employee_id UUID,
	status TEXT NOT NULL DEFAULT 'pending',
	start_date DATE,
	end_date DATE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_leaves_company ON leave_requests(company_id);

CREATE TABLE IF NOT EXISTS expense_claims (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	company_id UUID NOT NULL REFERENCES companies(id),
	employee_id UUID,
	status TEXT NOT NULL DEFAULT 'draft',
	amount_cents BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_expenses_company ON expense_claims(company_id);

CREATE TABLE IF NOT EXISTS performance_reviews (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	company_id UUID NOT NULL REFERENCES companies(id),
	employee_id UUID,
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_reviews_company ON performance_reviews(company_id);

CREATE TABLE IF NOT EXISTS contracts (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title TEXT NOT NULL,
	first_party_id UUID NOT NULL REFERENCES parties(id),
	second_party_id UUID NOT NULL REFERENCES parties(id),
	promoter_id UUID REFERENCES promoters(id),
	status TEXT NOT NULL DEFAULT 'draft',
	start_date DATE,
	end_date DATE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_contracts_first_party ON contracts(first_party_id);
CREATE INDEX IF NOT EXISTS idx_contracts_second_party ON contracts(second_party_id);

CREATE TABLE IF NOT EXISTS dashboard_layouts (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL UNIQUE REFERENCES users(id),
	layout JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			dsn := fmt.Sprintf(
				"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
				cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
				cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode,
			)
			db, err := sql.Open("postgres", dsn)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			if _, err := db.Exec(schema); err != nil {
				return fmt.Errorf("applying schema: %w", err)
			}

			fmt.Println("schema applied")
			return nil
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
