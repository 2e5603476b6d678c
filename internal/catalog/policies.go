package catalog

// policies is the static intervention table: 48 policies, 12 per pillar,
// across three tiers. Tier 1 policies unlock at the start year; tier 2 and 3
// policies unlock later and mostly gate on tier 1/2 prerequisites.
var policies = []PolicyDefinition{
	// ── Governance ────────────────────────────────────────────────────
	{
		ID: "gov_osh_framework_law", Name: "National OSH Framework Law",
		Pillar: PillarGovernance, Tier: 1, BaseCost: 15, MaxLevel: 3,
		Impact:     Impact{2.0, 0.4, 0.3, 0.2},
		UnlockYear: 2025, Tags: []string{"legislation", "foundation"},
	},
	{
		ID: "gov_labor_inspectorate", Name: "Labor Inspectorate Expansion",
		Pillar: PillarGovernance, Tier: 1, BaseCost: 12, MaxLevel: 4,
		Impact:     Impact{1.6, 0.8, 0.2, 0.0},
		UnlockYear: 2025, Tags: []string{"enforcement"},
	},
	{
		ID: "gov_tripartite_council", Name: "Tripartite OSH Council",
		Pillar: PillarGovernance, Tier: 1, BaseCost: 10, MaxLevel: 3,
		Impact:     Impact{1.5, 0.2, 0.3, 0.3},
		UnlockYear: 2025, Tags: []string{"dialogue"},
	},
	{
		ID: "gov_ilo_conventions", Name: "ILO Convention Ratification",
		Pillar: PillarGovernance, Tier: 1, BaseCost: 8, MaxLevel: 2,
		Impact:     Impact{1.8, 0.3, 0.3, 0.3},
		UnlockYear: 2025, Tags: []string{"legislation", "international"},
	},
	{
		ID: "gov_employer_registry", Name: "National Employer Registry",
		Pillar: PillarGovernance, Tier: 1, BaseCost: 10, MaxLevel: 3,
		Impact:     Impact{1.4, 0.3, 0.6, 0.0},
		UnlockYear: 2025, Tags: []string{"data"},
	},
	{
		ID: "gov_penalty_reform", Name: "Violation Penalty Reform",
		Pillar: PillarGovernance, Tier: 2, BaseCost: 18, MaxLevel: 3,
		Impact:     Impact{2.2, 1.0, 0.0, 0.0},
		Prereqs:    []string{"gov_osh_framework_law"},
		UnlockYear: 2028, Tags: []string{"enforcement", "legislation"},
	},
	{
		ID: "gov_sme_compliance_fund", Name: "SME Compliance Support Fund",
		Pillar: PillarGovernance, Tier: 2, BaseCost: 20, MaxLevel: 4,
		Impact:     Impact{1.8, 0.7, 0.2, 0.4},
		Prereqs:    []string{"gov_labor_inspectorate"},
		UnlockYear: 2029, Tags: []string{"funding", "sme"},
	},
	{
		ID: "gov_sector_codes", Name: "Sector-Specific Safety Codes",
		Pillar: PillarGovernance, Tier: 2, BaseCost: 16, MaxLevel: 3,
		Impact:     Impact{1.7, 1.2, 0.0, 0.0},
		Prereqs:    []string{"gov_osh_framework_law"},
		UnlockYear: 2029, Tags: []string{"legislation"},
	},
	{
		ID: "gov_whistleblower_act", Name: "Worker Whistleblower Protection Act",
		Pillar: PillarGovernance, Tier: 2, BaseCost: 14, MaxLevel: 2,
		Impact:     Impact{2.0, 0.5, 0.5, 0.0},
		Prereqs:    []string{"gov_tripartite_council"},
		UnlockYear: 2031, Tags: []string{"legislation", "rights"},
	},
	{
		ID: "gov_digital_inspection", Name: "Digital Inspection Platform",
		Pillar: PillarGovernance, Tier: 3, BaseCost: 28, MaxLevel: 3,
		Impact:     Impact{2.5, 1.0, 0.8, 0.0},
		Prereqs:    []string{"gov_labor_inspectorate", "gov_employer_registry"},
		UnlockYear: 2033, Tags: []string{"technology", "enforcement"},
	},
	{
		ID: "gov_informal_economy_act", Name: "Informal Economy Coverage Act",
		Pillar: PillarGovernance, Tier: 3, BaseCost: 32, MaxLevel: 3,
		Impact:     Impact{2.8, 0.6, 0.8, 0.8},
		Prereqs:    []string{"gov_penalty_reform", "gov_sme_compliance_fund"},
		UnlockYear: 2035, Tags: []string{"legislation", "coverage"},
	},
	{
		ID: "gov_osh_ministry", Name: "Dedicated OSH Ministry",
		Pillar: PillarGovernance, Tier: 3, BaseCost: 40, MaxLevel: 2,
		Impact:     Impact{3.0, 1.0, 1.0, 1.0},
		Prereqs:    []string{"gov_osh_framework_law", "gov_tripartite_council"},
		UnlockYear: 2037, Tags: []string{"institution"},
	},

	// ── Hazard Control ────────────────────────────────────────────────
	{
		ID: "haz_ppe_standards", Name: "PPE Standards & Subsidies",
		Pillar: PillarHazardControl, Tier: 1, BaseCost: 12, MaxLevel: 4,
		Impact:     Impact{0.0, 1.8, 0.3, 0.2},
		UnlockYear: 2025, Tags: []string{"equipment"},
	},
	{
		ID: "haz_machine_guarding", Name: "Machine Guarding Mandate",
		Pillar: PillarHazardControl, Tier: 1, BaseCost: 14, MaxLevel: 3,
		Impact:     Impact{0.2, 2.0, 0.0, 0.2},
		UnlockYear: 2025, Tags: []string{"engineering"},
	},
	{
		ID: "haz_chemical_inventory", Name: "Hazardous Chemical Inventory",
		Pillar: PillarHazardControl, Tier: 1, BaseCost: 10, MaxLevel: 3,
		Impact:     Impact{0.3, 1.6, 0.6, 0.0},
		UnlockYear: 2025, Tags: []string{"chemicals", "data"},
	},
	{
		ID: "haz_construction_code", Name: "Construction Safety Code",
		Pillar: PillarHazardControl, Tier: 1, BaseCost: 15, MaxLevel: 3,
		Impact:     Impact{0.4, 2.1, 0.0, 0.0},
		UnlockYear: 2025, Tags: []string{"construction"},
	},
	{
		ID: "haz_safety_training", Name: "Basic Safety Training Program",
		Pillar: PillarHazardControl, Tier: 1, BaseCost: 10, MaxLevel: 5,
		Impact:     Impact{0.2, 1.5, 0.4, 0.0},
		UnlockYear: 2025, Tags: []string{"training"},
	},
	{
		ID: "haz_exposure_limits", Name: "Occupational Exposure Limits",
		Pillar: PillarHazardControl, Tier: 2, BaseCost: 18, MaxLevel: 3,
		Impact:     Impact{0.3, 2.2, 0.8, 0.0},
		Prereqs:    []string{"haz_chemical_inventory"},
		UnlockYear: 2028, Tags: []string{"chemicals", "standards"},
	},
	{
		ID: "haz_mining_overhaul", Name: "Mining Safety Overhaul",
		Pillar: PillarHazardControl, Tier: 2, BaseCost: 24, MaxLevel: 3,
		Impact:     Impact{0.3, 2.4, 0.3, 0.4},
		Prereqs:    []string{"haz_machine_guarding"},
		UnlockYear: 2030, Tags: []string{"mining"},
	},
	{
		ID: "haz_ergonomics_program", Name: "National Ergonomics Program",
		Pillar: PillarHazardControl, Tier: 2, BaseCost: 16, MaxLevel: 4,
		Impact:     Impact{0.0, 1.8, 0.4, 0.8},
		Prereqs:    []string{"haz_safety_training"},
		UnlockYear: 2030, Tags: []string{"ergonomics"},
	},
	{
		ID: "haz_transport_safety", Name: "Work Transport Safety Rules",
		Pillar: PillarHazardControl, Tier: 2, BaseCost: 14, MaxLevel: 3,
		Impact:     Impact{0.4, 1.9, 0.0, 0.2},
		Prereqs:    []string{"haz_construction_code"},
		UnlockYear: 2031, Tags: []string{"transport"},
	},
	{
		ID: "haz_process_safety", Name: "Major-Hazard Process Safety Regime",
		Pillar: PillarHazardControl, Tier: 3, BaseCost: 30, MaxLevel: 3,
		Impact:     Impact{0.6, 2.6, 0.6, 0.2},
		Prereqs:    []string{"haz_exposure_limits", "haz_machine_guarding"},
		UnlockYear: 2033, Tags: []string{"industrial"},
	},
	{
		ID: "haz_smart_sensors", Name: "Workplace Sensor Network",
		Pillar: PillarHazardControl, Tier: 3, BaseCost: 34, MaxLevel: 3,
		Impact:     Impact{0.2, 2.8, 1.2, 0.0},
		Prereqs:    []string{"haz_exposure_limits"},
		UnlockYear: 2036, Tags: []string{"technology"},
	},
	{
		ID: "haz_zero_fatality", Name: "Zero Fatality Initiative",
		Pillar: PillarHazardControl, Tier: 3, BaseCost: 38, MaxLevel: 2,
		Impact:     Impact{0.8, 3.0, 0.8, 0.6},
		Prereqs:    []string{"haz_process_safety", "haz_safety_training"},
		UnlockYear: 2038, Tags: []string{"campaign"},
	},

	// ── Health Vigilance ──────────────────────────────────────────────
	{
		ID: "vig_injury_reporting", Name: "Mandatory Injury Reporting",
		Pillar: PillarHealthVigilance, Tier: 1, BaseCost: 10, MaxLevel: 3,
		Impact:     Impact{0.4, 0.2, 1.7, 0.0},
		UnlockYear: 2025, Tags: []string{"data", "reporting"},
	},
	{
		ID: "vig_health_checkups", Name: "Periodic Worker Health Checkups",
		Pillar: PillarHealthVigilance, Tier: 1, BaseCost: 14, MaxLevel: 4,
		Impact:     Impact{0.0, 0.2, 1.8, 0.4},
		UnlockYear: 2025, Tags: []string{"screening"},
	},
	{
		ID: "vig_disease_registry", Name: "Occupational Disease Registry",
		Pillar: PillarHealthVigilance, Tier: 1, BaseCost: 12, MaxLevel: 3,
		Impact:     Impact{0.3, 0.0, 1.9, 0.2},
		UnlockYear: 2025, Tags: []string{"data"},
	},
	{
		ID: "vig_clinic_network", Name: "Occupational Health Clinic Network",
		Pillar: PillarHealthVigilance, Tier: 1, BaseCost: 16, MaxLevel: 4,
		Impact:     Impact{0.0, 0.2, 1.6, 0.7},
		UnlockYear: 2025, Tags: []string{"infrastructure"},
	},
	{
		ID: "vig_hygiene_labs", Name: "Industrial Hygiene Laboratories",
		Pillar: PillarHealthVigilance, Tier: 1, BaseCost: 13, MaxLevel: 3,
		Impact:     Impact{0.0, 0.8, 1.5, 0.0},
		UnlockYear: 2025, Tags: []string{"infrastructure", "chemicals"},
	},
	{
		ID: "vig_mental_health", Name: "Workplace Mental Health Program",
		Pillar: PillarHealthVigilance, Tier: 2, BaseCost: 18, MaxLevel: 3,
		Impact:     Impact{0.2, 0.0, 2.0, 0.8},
		Prereqs:    []string{"vig_health_checkups"},
		UnlockYear: 2029, Tags: []string{"mental-health"},
	},
	{
		ID: "vig_exposure_biomonitoring", Name: "Exposure Biomonitoring Scheme",
		Pillar: PillarHealthVigilance, Tier: 2, BaseCost: 20, MaxLevel: 3,
		Impact:     Impact{0.0, 0.8, 2.2, 0.0},
		Prereqs:    []string{"vig_hygiene_labs"},
		UnlockYear: 2030, Tags: []string{"screening", "chemicals"},
	},
	{
		ID: "vig_sentinel_surveillance", Name: "Sentinel Surveillance Sites",
		Pillar: PillarHealthVigilance, Tier: 2, BaseCost: 17, MaxLevel: 3,
		Impact:     Impact{0.3, 0.3, 2.1, 0.0},
		Prereqs:    []string{"vig_injury_reporting", "vig_disease_registry"},
		UnlockYear: 2031, Tags: []string{"data"},
	},
	{
		ID: "vig_rural_outreach", Name: "Rural Worker Health Outreach",
		Pillar: PillarHealthVigilance, Tier: 2, BaseCost: 15, MaxLevel: 4,
		Impact:     Impact{0.2, 0.2, 1.8, 0.5},
		Prereqs:    []string{"vig_clinic_network"},
		UnlockYear: 2031, Tags: []string{"coverage", "agriculture"},
	},
	{
		ID: "vig_health_analytics", Name: "National Health Analytics Platform",
		Pillar: PillarHealthVigilance, Tier: 3, BaseCost: 30, MaxLevel: 3,
		Impact:     Impact{0.8, 0.4, 2.6, 0.2},
		Prereqs:    []string{"vig_sentinel_surveillance"},
		UnlockYear: 2034, Tags: []string{"technology", "data"},
	},
	{
		ID: "vig_genomic_screening", Name: "Occupational Genomic Screening",
		Pillar: PillarHealthVigilance, Tier: 3, BaseCost: 36, MaxLevel: 2,
		Impact:     Impact{0.0, 0.3, 2.9, 0.5},
		Prereqs:    []string{"vig_exposure_biomonitoring", "vig_health_checkups"},
		UnlockYear: 2037, Tags: []string{"technology", "screening"},
	},
	{
		ID: "vig_universal_coverage", Name: "Universal Occupational Health Coverage",
		Pillar: PillarHealthVigilance, Tier: 3, BaseCost: 38, MaxLevel: 3,
		Impact:     Impact{0.6, 0.2, 3.0, 1.0},
		Prereqs:    []string{"vig_rural_outreach", "vig_mental_health"},
		UnlockYear: 2038, Tags: []string{"coverage"},
	},

	// ── Restoration ───────────────────────────────────────────────────
	{
		ID: "res_injury_insurance", Name: "Workplace Injury Insurance",
		Pillar: PillarRestoration, Tier: 1, BaseCost: 14, MaxLevel: 4,
		Impact:     Impact{0.4, 0.0, 0.2, 1.7},
		UnlockYear: 2025, Tags: []string{"insurance"},
	},
	{
		ID: "res_rehab_centers", Name: "Rehabilitation Center Network",
		Pillar: PillarRestoration, Tier: 1, BaseCost: 16, MaxLevel: 4,
		Impact:     Impact{0.0, 0.0, 0.4, 1.8},
		UnlockYear: 2025, Tags: []string{"infrastructure"},
	},
	{
		ID: "res_compensation_board", Name: "Workers' Compensation Board",
		Pillar: PillarRestoration, Tier: 1, BaseCost: 12, MaxLevel: 3,
		Impact:     Impact{0.6, 0.0, 0.0, 1.6},
		UnlockYear: 2025, Tags: []string{"institution", "insurance"},
	},
	{
		ID: "res_return_to_work", Name: "Return-to-Work Program",
		Pillar: PillarRestoration, Tier: 1, BaseCost: 10, MaxLevel: 3,
		Impact:     Impact{0.0, 0.2, 0.3, 1.5},
		UnlockYear: 2025, Tags: []string{"reintegration"},
	},
	{
		ID: "res_disability_support", Name: "Occupational Disability Support",
		Pillar: PillarRestoration, Tier: 1, BaseCost: 13, MaxLevel: 3,
		Impact:     Impact{0.2, 0.0, 0.2, 1.7},
		UnlockYear: 2025, Tags: []string{"welfare"},
	},
	{
		ID: "res_vocational_retraining", Name: "Vocational Retraining Scheme",
		Pillar: PillarRestoration, Tier: 2, BaseCost: 18, MaxLevel: 4,
		Impact:     Impact{0.2, 0.2, 0.0, 2.0},
		Prereqs:    []string{"res_return_to_work"},
		UnlockYear: 2029, Tags: []string{"reintegration", "training"},
	},
	{
		ID: "res_family_benefits", Name: "Survivor & Family Benefits",
		Pillar: PillarRestoration, Tier: 2, BaseCost: 16, MaxLevel: 3,
		Impact:     Impact{0.3, 0.0, 0.0, 2.1},
		Prereqs:    []string{"res_injury_insurance"},
		UnlockYear: 2030, Tags: []string{"welfare", "insurance"},
	},
	{
		ID: "res_psych_rehab", Name: "Psychological Rehabilitation Services",
		Pillar: PillarRestoration, Tier: 2, BaseCost: 17, MaxLevel: 3,
		Impact:     Impact{0.0, 0.0, 0.8, 1.9},
		Prereqs:    []string{"res_rehab_centers"},
		UnlockYear: 2031, Tags: []string{"mental-health"},
	},
	{
		ID: "res_claims_fasttrack", Name: "Claims Fast-Track Reform",
		Pillar: PillarRestoration, Tier: 2, BaseCost: 15, MaxLevel: 3,
		Impact:     Impact{0.7, 0.0, 0.0, 1.8},
		Prereqs:    []string{"res_compensation_board"},
		UnlockYear: 2031, Tags: []string{"institution"},
	},
	{
		ID: "res_prosthetics_fund", Name: "Assistive Technology Fund",
		Pillar: PillarRestoration, Tier: 3, BaseCost: 28, MaxLevel: 3,
		Impact:     Impact{0.0, 0.0, 0.5, 2.5},
		Prereqs:    []string{"res_disability_support", "res_rehab_centers"},
		UnlockYear: 2034, Tags: []string{"technology", "welfare"},
	},
	{
		ID: "res_lifetime_care", Name: "Lifetime Care Guarantee",
		Pillar: PillarRestoration, Tier: 3, BaseCost: 36, MaxLevel: 2,
		Impact:     Impact{0.5, 0.0, 0.5, 2.8},
		Prereqs:    []string{"res_family_benefits", "res_claims_fasttrack"},
		UnlockYear: 2037, Tags: []string{"welfare"},
	},
	{
		ID: "res_national_reintegration", Name: "National Reintegration Compact",
		Pillar: PillarRestoration, Tier: 3, BaseCost: 34, MaxLevel: 3,
		Impact:     Impact{0.8, 0.2, 0.4, 3.0},
		Prereqs:    []string{"res_vocational_retraining", "res_psych_rehab"},
		UnlockYear: 2038, Tags: []string{"reintegration", "campaign"},
	},
}
