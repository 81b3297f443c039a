// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

// builtin is the default vocabulary shipped with the binary. A YAML file
// of the same shape (see Load) replaces it wholesale.
//
// Age-group item keys encode the band as the two integers in the key:
// "chi_2_9" declares the inclusive range [2, 9].
var builtin = Raw{
	"population": {
		"age_group": {
			"nb_0_1": {
				{Surface: "newborn"}, {Surface: "newborns"},
				{Surface: "neonate"}, {Surface: "neonates"},
				{Surface: "infant"}, {Surface: "infants"},
			},
			"chi_2_9": {
				{Surface: "child"}, {Surface: "children"},
				{Surface: "toddler"}, {Surface: "toddlers"},
				{Surface: "preschool"}, {Surface: "school-age"},
			},
			"ado_10_17": {
				{Surface: "adolescent"}, {Surface: "adolescents"},
				{Surface: "teenager"}, {Surface: "teenagers"},
				{Surface: "youth"},
			},
			"adu_18_64": {
				{Surface: "adult"}, {Surface: "adults"},
			},
			"old_65_110": {
				{Surface: "elderly"}, {Surface: "seniors"},
				{Surface: "older adults"}, {Surface: "aged care"},
			},
		},
		"group": {
			"size": {
				{Surface: "participants"}, {Surface: "patients"},
				{Surface: "subjects"}, {Surface: "individuals"},
				{Surface: "respondents"}, {Surface: "enrolled"},
			},
		},
		"specific_group": {
			"hcw": {
				{Surface: "health care workers", Code: "HCW"},
				{Surface: "healthcare workers", Code: "HCW"},
				{Surface: "health personnel", Code: "HCW"},
				{Surface: "nurses"}, {Surface: "physicians"},
			},
			"preg": {
				{Surface: "pregnant women", Code: "PW"},
				{Surface: "pregnancy"}, {Surface: "maternal"},
			},
			"immunocomp": {
				{Surface: "immunocompromised", Code: "IC"},
				{Surface: "immunosuppressed", Code: "IC"},
			},
			"travel": {
				{Surface: "travellers"}, {Surface: "travelers"},
				{Surface: "migrants"}, {Surface: "refugees"},
			},
		},
	},
	"studies": {
		"no_of_studies": {
			"sty": {
				{Surface: "study"}, {Surface: "trial"},
				{Surface: "randomized controlled trial"},
				{Surface: "observational study"},
				{Surface: "cohort study"},
				{Surface: "case-control study"},
				{Surface: "cross-sectional study"},
				{Surface: "qualitative study"},
				{Surface: "mixed methods study"},
			},
		},
		"study_design": {
			"rct": {
				{Surface: "randomized controlled trial", Code: "RCT"},
				{Surface: "randomised controlled trial", Code: "RCT"},
				{Surface: "randomized clinical trial", Code: "RCT"},
			},
			"nrsi": {
				{Surface: "non-randomized study", Code: "NRSI"},
				{Surface: "non-randomised study", Code: "NRSI"},
				{Surface: "observational study"},
			},
			"rev": {
				{Surface: "systematic review"},
				{Surface: "meta-analysis"},
				{Surface: "scoping review"},
			},
		},
	},
	"gender": {
		"group": {
			"all": {
				{Surface: "male"}, {Surface: "female"},
				{Surface: "men"}, {Surface: "women"},
				{Surface: "boys"}, {Surface: "girls"},
				{Surface: "non-binary"}, {Surface: "transgender"},
			},
		},
	},
	"topic": {
		"efficacy_effectiveness": {
			"ve": {
				{Surface: "vaccine efficacy", Code: "VE"},
				{Surface: "vaccine effectiveness", Code: "VE"},
				{Surface: "efficacy"}, {Surface: "effectiveness"},
			},
		},
		"safety": {
			"saf": {
				{Surface: "safety"}, {Surface: "adverse events", Code: "AE"},
				{Surface: "adverse effects", Code: "AE"},
				{Surface: "side effects"}, {Surface: "reactogenicity"},
			},
		},
		"acceptance": {
			"acc": {
				{Surface: "vaccine acceptance"}, {Surface: "vaccine hesitancy"},
				{Surface: "vaccine confidence"}, {Surface: "vaccine uptake"},
				{Surface: "vaccine refusal"},
			},
		},
		"coverage": {
			"cov": {
				{Surface: "vaccination coverage"}, {Surface: "immunization coverage"},
				{Surface: "coverage rate"},
			},
		},
	},
	"intervention": {
		"delivery": {
			"camp": {
				{Surface: "vaccination campaign"}, {Surface: "mass vaccination"},
				{Surface: "school-based vaccination"}, {Surface: "outreach"},
				{Surface: "catch-up vaccination"},
			},
			"rem": {
				{Surface: "reminder"}, {Surface: "recall"},
				{Surface: "text message", Code: "SMS"},
			},
		},
		"demand": {
			"edu": {
				{Surface: "health education"}, {Surface: "counselling"},
				{Surface: "counseling"}, {Surface: "community engagement"},
			},
			"inc": {
				{Surface: "incentive"}, {Surface: "incentives"},
				{Surface: "conditional cash transfer", Code: "CCT"},
			},
		},
	},
	"outcome": {
		"clinical": {
			"hosp": {
				{Surface: "hospitalization"}, {Surface: "hospitalisation"},
				{Surface: "hospital admission"},
			},
			"mort": {
				{Surface: "mortality"}, {Surface: "death"}, {Surface: "deaths"},
				{Surface: "case fatality"},
			},
			"sero": {
				{Surface: "seroconversion"}, {Surface: "antibody titer"},
				{Surface: "antibody titre"}, {Surface: "immunogenicity"},
			},
		},
	},
	"vpd": {
		"disease": {
			"covid": {
				{Surface: "covid-19"}, {Surface: "covid"},
				{Surface: "sars-cov-2"}, {Surface: "coronavirus"},
			},
			"flu": {
				{Surface: "influenza"}, {Surface: "flu"},
			},
			"measles": {
				{Surface: "measles"}, {Surface: "rubella"},
				{Surface: "mmr"},
			},
			"hpv": {
				{Surface: "human papillomavirus", Code: "HPV"},
				{Surface: "hpv"}, {Surface: "cervical cancer"},
			},
			"polio": {
				{Surface: "polio"}, {Surface: "poliomyelitis"},
			},
			"pert": {
				{Surface: "pertussis"}, {Surface: "whooping cough"},
				{Surface: "dtp"}, {Surface: "dtap"},
			},
			"pneumo": {
				{Surface: "pneumococcal"}, {Surface: "pneumonia"},
			},
			"rota": {
				{Surface: "rotavirus"}, {Surface: "diarrhoea"},
				{Surface: "diarrhea"},
			},
		},
	},
}
