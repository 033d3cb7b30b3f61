package markers

// familyDecl pairs a family with its marker types in declaration order.
// Family order and in-family order are load-bearing: the keyword resolver
// iterates them verbatim, so reordering entries changes which type wins
// when keyword substrings overlap.
type familyDecl struct {
	Family Family
	Types  []MarkerTypeDefinition
}

func lat(lx, ly, rx, ry float64) *LateralityAdjustments {
	return &LateralityAdjustments{
		Left:  Position{X: lx, Y: ly},
		Right: Position{X: rx, Y: ry},
	}
}

var catalog = []familyDecl{
	{Family: FamilyVascularAccess, Types: []MarkerTypeDefinition{
		{
			Type:              "picc_line",
			DisplayName:       "PICC Line",
			Category:          CategoryModerate,
			DefaultBodyRegion: "upper_arm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 22, Y: 35},
			Laterality:        lat(78, 35, 22, 35),
			Keywords:          []string{"picc line", "picc", "peripherally inserted central catheter", "double lumen picc"},
		},
		{
			Type:              "central_line",
			DisplayName:       "Central Line",
			Category:          CategoryModerate,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 38, Y: 28},
			Laterality:        lat(62, 28, 38, 28),
			Keywords:          []string{"central line", "central venous catheter", "cvc", "triple lumen", "internal jugular line", "subclavian line"},
		},
		{
			Type:              "port_a_cath",
			DisplayName:       "Implanted Port",
			Category:          CategoryModerate,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 36, Y: 30},
			Laterality:        lat(64, 30, 36, 30),
			Keywords:          []string{"port-a-cath", "mediport", "implanted port", "port"},
		},
		{
			Type:              "midline_catheter",
			DisplayName:       "Midline Catheter",
			Category:          CategoryModerate,
			DefaultBodyRegion: "upper_arm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 24, Y: 38},
			Laterality:        lat(76, 38, 24, 38),
			Keywords:          []string{"midline catheter", "midline"},
		},
		{
			Type:              "peripheral_iv",
			DisplayName:       "Peripheral IV",
			Category:          CategoryInformational,
			DefaultBodyRegion: "forearm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 20, Y: 46},
			Laterality:        lat(80, 46, 20, 46),
			Keywords:          []string{"peripheral iv", "piv", "iv site", "intravenous catheter", "saline lock"},
		},
		{
			Type:              "arterial_line",
			DisplayName:       "Arterial Line",
			Category:          CategoryMonitoring,
			DefaultBodyRegion: "wrist",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 17, Y: 52},
			Laterality:        lat(83, 52, 17, 52),
			Keywords:          []string{"arterial line", "art line", "a-line", "radial art line"},
		},
		{
			Type:              "dialysis_catheter",
			DisplayName:       "Dialysis Catheter",
			Category:          CategoryModerate,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 41, Y: 25},
			Laterality:        lat(59, 25, 41, 25),
			Keywords:          []string{"dialysis catheter", "permcath", "vascath", "hemodialysis catheter", "hd catheter"},
		},
		{
			Type:              "av_fistula",
			DisplayName:       "AV Fistula",
			Category:          CategoryModerate,
			DefaultBodyRegion: "forearm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 21, Y: 44},
			Laterality:        lat(79, 44, 21, 44),
			Keywords:          []string{"av fistula", "arteriovenous fistula", "dialysis fistula", "av graft"},
		},
	}},

	{Family: FamilyVeinAccess, Types: []MarkerTypeDefinition{
		{
			Type:              "difficult_venous_access",
			DisplayName:       "Difficult Venous Access",
			Category:          CategoryInformational,
			DefaultBodyRegion: "forearm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 20, Y: 42},
			Laterality:        lat(80, 42, 20, 42),
			Keywords:          []string{"difficult venous access", "difficult iv access", "hard stick", "difficult stick", "poor venous access"},
		},
		{
			Type:              "ultrasound_access_only",
			DisplayName:       "Ultrasound-Guided Access Only",
			Category:          CategoryInformational,
			DefaultBodyRegion: "forearm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 22, Y: 43},
			Laterality:        lat(78, 43, 22, 43),
			Keywords:          []string{"ultrasound guided iv", "ultrasound access only", "us-guided access"},
		},
		{
			Type:              "port_access_only",
			DisplayName:       "Access via Port Only",
			Category:          CategoryInformational,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 36, Y: 31},
			Keywords:          []string{"port access only", "access via port only", "use port for access"},
		},
		{
			Type:              "vein_preservation",
			DisplayName:       "Vein Preservation",
			Category:          CategoryInformational,
			DefaultBodyRegion: "forearm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 19, Y: 45},
			Laterality:        lat(81, 45, 19, 45),
			Keywords:          []string{"vein preservation", "preserve veins", "save veins for fistula"},
		},
	}},

	{Family: FamilyDrainageTubes, Types: []MarkerTypeDefinition{
		{
			Type:              "endotracheal_tube",
			DisplayName:       "Endotracheal Tube",
			Category:          CategoryCritical,
			DefaultBodyRegion: "mouth",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 13},
			Keywords:          []string{"endotracheal tube", "ett", "intubated", "oral airway"},
		},
		{
			Type:              "tracheostomy",
			DisplayName:       "Tracheostomy",
			Category:          CategoryCritical,
			DefaultBodyRegion: "neck",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 18},
			Keywords:          []string{"tracheostomy", "trach tube", "trach"},
		},
		{
			Type:              "chest_tube",
			DisplayName:       "Chest Tube",
			Category:          CategoryModerate,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 39, Y: 33},
			Laterality:        lat(61, 33, 39, 33),
			Keywords:          []string{"chest tube", "thoracostomy tube", "pleural drain", "pigtail catheter"},
		},
		{
			Type:              "ng_tube",
			DisplayName:       "NG Tube",
			Category:          CategoryModerate,
			DefaultBodyRegion: "nose",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 48, Y: 11},
			Laterality:        lat(52, 11, 48, 11),
			Keywords:          []string{"ng tube", "nasogastric tube", "nasogastric", "dobhoff"},
		},
		{
			Type:              "peg_tube",
			DisplayName:       "PEG Tube",
			Category:          CategoryModerate,
			DefaultBodyRegion: "abdomen",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 45, Y: 48},
			Keywords:          []string{"peg tube", "gastrostomy", "g-tube", "feeding tube"},
		},
		{
			Type:              "jp_drain",
			DisplayName:       "JP Drain",
			Category:          CategoryModerate,
			DefaultBodyRegion: "abdomen",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 42, Y: 50},
			Laterality:        lat(58, 50, 42, 50),
			Keywords:          []string{"jp drain", "jackson-pratt", "jackson pratt drain", "surgical drain", "hemovac"},
		},
		{
			Type:              "foley_catheter",
			DisplayName:       "Foley Catheter",
			Category:          CategoryInformational,
			DefaultBodyRegion: "pelvis",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 58},
			Keywords:          []string{"foley catheter", "foley", "urinary catheter", "indwelling catheter"},
		},
		{
			Type:              "ostomy",
			DisplayName:       "Ostomy",
			Category:          CategoryModerate,
			DefaultBodyRegion: "abdomen",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 40, Y: 52},
			Laterality:        lat(60, 52, 40, 52),
			Keywords:          []string{"colostomy", "ileostomy", "urostomy", "ostomy", "stoma"},
		},
		{
			Type:              "wound_vac",
			DisplayName:       "Wound VAC",
			Category:          CategoryModerate,
			DefaultBodyRegion: "abdomen",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 47, Y: 47},
			Keywords:          []string{"wound vac", "negative pressure wound therapy", "npwt"},
		},
	}},

	{Family: FamilyWoundsSurgical, Types: []MarkerTypeDefinition{
		{
			Type:              "pressure_ulcer",
			DisplayName:       "Pressure Injury",
			Category:          CategoryModerate,
			DefaultBodyRegion: "sacrum",
			DefaultBodyView:   ViewBack,
			DefaultPosition:   Position{X: 50, Y: 55},
			Keywords:          []string{"pressure ulcer", "pressure injury", "bedsore", "decubitus ulcer", "sacral wound"},
			ICD10:             "L89.159",
		},
		{
			Type:              "surgical_incision",
			DisplayName:       "Surgical Incision",
			Category:          CategoryModerate,
			DefaultBodyRegion: "abdomen",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 48, Y: 46},
			Laterality:        lat(56, 46, 44, 46),
			Keywords:          []string{"surgical incision", "incision site", "surgical wound", "sternotomy"},
		},
		{
			Type:              "diabetic_ulcer",
			DisplayName:       "Diabetic Ulcer",
			Category:          CategoryChronic,
			DefaultBodyRegion: "foot",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 45, Y: 93},
			Laterality:        lat(55, 93, 45, 93),
			Keywords:          []string{"diabetic ulcer", "diabetic foot wound", "foot ulcer"},
			ICD10:             "E11.621",
		},
		{
			Type:              "laceration",
			DisplayName:       "Laceration",
			Category:          CategoryModerate,
			DefaultBodyRegion: "forearm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 22, Y: 47},
			Laterality:        lat(78, 47, 22, 47),
			Keywords:          []string{"laceration", "lac repair", "sutured wound"},
		},
		{
			Type:              "burn",
			DisplayName:       "Burn",
			Category:          CategoryModerate,
			DefaultBodyRegion: "forearm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 24, Y: 45},
			Laterality:        lat(76, 45, 24, 45),
			Keywords:          []string{"burn wound", "thermal injury", "burn"},
		},
		{
			Type:              "skin_tear",
			DisplayName:       "Skin Tear",
			Category:          CategoryInformational,
			DefaultBodyRegion: "forearm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 23, Y: 44},
			Laterality:        lat(77, 44, 23, 44),
			Keywords:          []string{"skin tear"},
		},
	}},

	{Family: FamilyOrthopedic, Types: []MarkerTypeDefinition{
		{
			Type:              "cast",
			DisplayName:       "Cast",
			Category:          CategoryInformational,
			DefaultBodyRegion: "forearm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 20, Y: 48},
			Laterality:        lat(80, 48, 20, 48),
			Keywords:          []string{"fiberglass cast", "plaster cast", "cast"},
		},
		{
			Type:              "splint",
			DisplayName:       "Splint",
			Category:          CategoryInformational,
			DefaultBodyRegion: "forearm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 21, Y: 49},
			Laterality:        lat(79, 49, 21, 49),
			Keywords:          []string{"splint", "sugar tong", "posterior mold"},
		},
		{
			Type:              "external_fixator",
			DisplayName:       "External Fixator",
			Category:          CategoryModerate,
			DefaultBodyRegion: "lower_leg",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 43, Y: 80},
			Laterality:        lat(57, 80, 43, 80),
			Keywords:          []string{"external fixator", "ex-fix", "ex fix"},
		},
		{
			Type:              "traction",
			DisplayName:       "Traction",
			Category:          CategoryModerate,
			DefaultBodyRegion: "thigh",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 44, Y: 68},
			Laterality:        lat(56, 68, 44, 68),
			Keywords:          []string{"skeletal traction", "bucks traction", "traction"},
		},
		{
			Type:              "amputation",
			DisplayName:       "Amputation",
			Category:          CategoryChronic,
			DefaultBodyRegion: "lower_leg",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 44, Y: 78},
			Laterality:        lat(56, 78, 44, 78),
			Keywords:          []string{"below knee amputation", "above knee amputation", "bka", "aka", "amputation", "amputee"},
			ICD10:             "Z89.511",
		},
		{
			Type:              "joint_replacement",
			DisplayName:       "Joint Replacement",
			Category:          CategoryInformational,
			DefaultBodyRegion: "hip",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 42, Y: 58},
			Laterality:        lat(58, 58, 42, 58),
			Keywords:          []string{"total knee replacement", "total hip replacement", "joint replacement", "knee replacement", "hip replacement"},
			ICD10:             "Z96.651",
		},
	}},

	{Family: FamilyMonitoring, Types: []MarkerTypeDefinition{
		{
			Type:              "telemetry",
			DisplayName:       "Telemetry",
			Category:          CategoryMonitoring,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 30},
			Keywords:          []string{"telemetry", "cardiac monitor", "tele monitoring", "on tele"},
		},
		{
			Type:              "pulse_oximeter",
			DisplayName:       "Pulse Oximeter",
			Category:          CategoryMonitoring,
			DefaultBodyRegion: "hand",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 15, Y: 55},
			Laterality:        lat(85, 55, 15, 55),
			Keywords:          []string{"pulse oximeter", "pulse ox", "continuous spo2", "spo2 monitor"},
		},
		{
			Type:              "continuous_glucose_monitor",
			DisplayName:       "Continuous Glucose Monitor",
			Category:          CategoryMonitoring,
			DefaultBodyRegion: "upper_arm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 25, Y: 38},
			Laterality:        lat(75, 38, 25, 38),
			Keywords:          []string{"continuous glucose monitor", "glucose sensor", "cgm"},
		},
		{
			Type:              "holter_monitor",
			DisplayName:       "Holter Monitor",
			Category:          CategoryMonitoring,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 49, Y: 31},
			Keywords:          []string{"holter monitor", "holter"},
		},
		{
			Type:              "eeg_monitoring",
			DisplayName:       "EEG Monitoring",
			Category:          CategoryMonitoring,
			DefaultBodyRegion: "head",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 5},
			Keywords:          []string{"eeg monitoring", "video eeg", "eeg"},
		},
	}},

	{Family: FamilyImplants, Types: []MarkerTypeDefinition{
		{
			Type:              "pacemaker",
			DisplayName:       "Pacemaker",
			Category:          CategoryModerate,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 38, Y: 26},
			Laterality:        lat(62, 26, 38, 26),
			Keywords:          []string{"pacemaker", "permanent pacemaker", "ppm"},
			ICD10:             "Z95.0",
		},
		{
			Type:              "defibrillator",
			DisplayName:       "Implanted Defibrillator",
			Category:          CategoryModerate,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 37, Y: 27},
			Laterality:        lat(63, 27, 37, 27),
			Keywords:          []string{"implanted defibrillator", "defibrillator", "aicd", "icd device"},
			ICD10:             "Z95.810",
		},
		{
			Type:              "insulin_pump",
			DisplayName:       "Insulin Pump",
			Category:          CategoryModerate,
			DefaultBodyRegion: "abdomen",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 40, Y: 46},
			Laterality:        lat(60, 46, 40, 46),
			Keywords:          []string{"insulin pump"},
		},
		{
			Type:              "vp_shunt",
			DisplayName:       "VP Shunt",
			Category:          CategoryModerate,
			DefaultBodyRegion: "head",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 55, Y: 7},
			Laterality:        lat(60, 7, 40, 7),
			Keywords:          []string{"ventriculoperitoneal shunt", "vp shunt", "shunt"},
		},
		{
			Type:              "cochlear_implant",
			DisplayName:       "Cochlear Implant",
			Category:          CategoryInformational,
			DefaultBodyRegion: "head",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 40, Y: 8},
			Laterality:        lat(60, 8, 40, 8),
			Keywords:          []string{"cochlear implant"},
		},
		{
			Type:              "spinal_stimulator",
			DisplayName:       "Spinal Cord Stimulator",
			Category:          CategoryInformational,
			DefaultBodyRegion: "spine",
			DefaultBodyView:   ViewBack,
			DefaultPosition:   Position{X: 50, Y: 45},
			Keywords:          []string{"spinal cord stimulator", "spinal stimulator"},
		},
	}},

	{Family: FamilyChronic, Types: []MarkerTypeDefinition{
		{
			Type:              "diabetes",
			DisplayName:       "Diabetes",
			Category:          CategoryChronic,
			DefaultBodyRegion: "abdomen",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 46},
			Keywords:          []string{"type 2 diabetes", "type 1 diabetes", "diabetes", "diabetic"},
			ICD10:             "E11.9",
		},
		{
			Type:              "heart_failure",
			DisplayName:       "Heart Failure",
			Category:          CategoryChronic,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 32},
			Keywords:          []string{"congestive heart failure", "heart failure", "chf"},
			ICD10:             "I50.9",
		},
		{
			Type:              "copd",
			DisplayName:       "COPD",
			Category:          CategoryChronic,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 28},
			Keywords:          []string{"copd", "emphysema", "chronic obstructive pulmonary disease"},
			ICD10:             "J44.9",
		},
		{
			Type:              "chronic_kidney_disease",
			DisplayName:       "Chronic Kidney Disease",
			Category:          CategoryChronic,
			DefaultBodyRegion: "flank",
			DefaultBodyView:   ViewBack,
			DefaultPosition:   Position{X: 44, Y: 42},
			Laterality:        lat(56, 42, 44, 42),
			Keywords:          []string{"chronic kidney disease", "ckd", "esrd", "end stage renal disease"},
			ICD10:             "N18.9",
		},
		{
			Type:              "hypertension",
			DisplayName:       "Hypertension",
			Category:          CategoryChronic,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 31},
			Keywords:          []string{"hypertension", "high blood pressure", "htn"},
			ICD10:             "I10",
		},
		{
			Type:              "atrial_fibrillation",
			DisplayName:       "Atrial Fibrillation",
			Category:          CategoryChronic,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 30},
			Keywords:          []string{"atrial fibrillation", "afib", "a-fib"},
			ICD10:             "I48.91",
		},
		{
			Type:              "cirrhosis",
			DisplayName:       "Cirrhosis",
			Category:          CategoryChronic,
			DefaultBodyRegion: "abdomen",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 55, Y: 44},
			Keywords:          []string{"cirrhosis", "liver cirrhosis", "end stage liver disease"},
			ICD10:             "K74.60",
		},
	}},

	{Family: FamilyNeurological, Types: []MarkerTypeDefinition{
		{
			Type:              "stroke_history",
			DisplayName:       "Stroke History",
			Category:          CategoryNeurological,
			DefaultBodyRegion: "head",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 6},
			Keywords:          []string{"cerebrovascular accident", "prior stroke", "stroke", "cva"},
			ICD10:             "I69.30",
		},
		{
			Type:              "seizure_disorder",
			DisplayName:       "Seizure Disorder",
			Category:          CategoryNeurological,
			DefaultBodyRegion: "head",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 6},
			Keywords:          []string{"seizure disorder", "epilepsy", "seizure"},
			ICD10:             "G40.909",
		},
		{
			Type:              "dementia",
			DisplayName:       "Dementia",
			Category:          CategoryNeurological,
			DefaultBodyRegion: "head",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 6},
			Keywords:          []string{"dementia", "alzheimer", "cognitive impairment"},
			ICD10:             "F03.90",
		},
		{
			Type:              "parkinsons",
			DisplayName:       "Parkinson's Disease",
			Category:          CategoryNeurological,
			DefaultBodyRegion: "head",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 6},
			Keywords:          []string{"parkinson's disease", "parkinsons", "parkinson"},
			ICD10:             "G20",
		},
		{
			Type:              "hemiparesis",
			DisplayName:       "Hemiparesis",
			Category:          CategoryNeurological,
			DefaultBodyRegion: "upper_arm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 30, Y: 40},
			Laterality:        lat(70, 40, 30, 40),
			Keywords:          []string{"hemiparesis", "hemiplegia", "one-sided weakness"},
		},
		{
			Type:              "neuropathy",
			DisplayName:       "Peripheral Neuropathy",
			Category:          CategoryNeurological,
			DefaultBodyRegion: "foot",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 92},
			Keywords:          []string{"peripheral neuropathy", "neuropathy"},
			ICD10:             "E11.42",
		},
	}},

	{Family: FamilyPrecautions, Types: []MarkerTypeDefinition{
		{
			Type:              "fall_risk",
			DisplayName:       "Fall Risk",
			Category:          CategoryCritical,
			DefaultBodyRegion: "torso",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 50},
			Keywords:          []string{"high fall risk", "fall risk", "fall precautions", "history of falls"},
			IsStatusBadge:     true,
			BadgeColor:        "#f59e0b",
			BadgeIcon:         "fall",
		},
		{
			Type:              "seizure_precautions",
			DisplayName:       "Seizure Precautions",
			Category:          CategoryCritical,
			DefaultBodyRegion: "head",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 6},
			Keywords:          []string{"seizure precautions", "padded side rails"},
			IsStatusBadge:     true,
			BadgeColor:        "#f97316",
			BadgeIcon:         "zap",
		},
		{
			Type:              "aspiration_precautions",
			DisplayName:       "Aspiration Precautions",
			Category:          CategoryCritical,
			DefaultBodyRegion: "neck",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 17},
			Keywords:          []string{"aspiration precautions", "aspiration risk", "dysphagia", "thickened liquids"},
			IsStatusBadge:     true,
			BadgeColor:        "#f97316",
			BadgeIcon:         "droplet-off",
		},
		{
			Type:              "bleeding_precautions",
			DisplayName:       "Bleeding Precautions",
			Category:          CategoryCritical,
			DefaultBodyRegion: "torso",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 49},
			Keywords:          []string{"bleeding precautions", "anticoagulated", "on blood thinners"},
			IsStatusBadge:     true,
			BadgeColor:        "#dc2626",
			BadgeIcon:         "droplet",
		},
		{
			Type:              "suicide_precautions",
			DisplayName:       "Suicide Precautions",
			Category:          CategoryCritical,
			DefaultBodyRegion: "torso",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 48},
			Keywords:          []string{"suicide precautions", "suicide watch", "1:1 observation", "sitter at bedside"},
			IsStatusBadge:     true,
			BadgeColor:        "#7c3aed",
			BadgeIcon:         "eye",
		},
		{
			Type:              "elopement_risk",
			DisplayName:       "Elopement Risk",
			Category:          CategoryCritical,
			DefaultBodyRegion: "torso",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 47},
			Keywords:          []string{"elopement risk", "elopement", "wandering risk"},
			IsStatusBadge:     true,
			BadgeColor:        "#f59e0b",
			BadgeIcon:         "door-open",
		},
	}},

	{Family: FamilyIsolation, Types: []MarkerTypeDefinition{
		{
			Type:              "contact_isolation",
			DisplayName:       "Contact Isolation",
			Category:          CategoryCritical,
			DefaultBodyRegion: "torso",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 45},
			Keywords:          []string{"contact isolation", "contact precautions", "mrsa", "vre", "c. diff", "c diff"},
			IsStatusBadge:     true,
			BadgeColor:        "#eab308",
			BadgeIcon:         "hand",
		},
		{
			Type:              "droplet_isolation",
			DisplayName:       "Droplet Isolation",
			Category:          CategoryCritical,
			DefaultBodyRegion: "torso",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 44},
			Keywords:          []string{"droplet isolation", "droplet precautions", "influenza isolation"},
			IsStatusBadge:     true,
			BadgeColor:        "#22c55e",
			BadgeIcon:         "droplets",
		},
		{
			Type:              "airborne_isolation",
			DisplayName:       "Airborne Isolation",
			Category:          CategoryCritical,
			DefaultBodyRegion: "torso",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 43},
			Keywords:          []string{"airborne isolation", "airborne precautions", "tb isolation", "tuberculosis isolation", "negative pressure room"},
			IsStatusBadge:     true,
			BadgeColor:        "#3b82f6",
			BadgeIcon:         "wind",
		},
		{
			Type:              "neutropenic_precautions",
			DisplayName:       "Neutropenic Precautions",
			Category:          CategoryCritical,
			DefaultBodyRegion: "torso",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 42},
			Keywords:          []string{"neutropenic precautions", "neutropenic", "reverse isolation", "protective isolation"},
			IsStatusBadge:     true,
			BadgeColor:        "#14b8a6",
			BadgeIcon:         "shield",
		},
	}},

	{Family: FamilyCodeStatus, Types: []MarkerTypeDefinition{
		{
			Type:              "dnr",
			DisplayName:       "DNR",
			Category:          CategoryCritical,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 30},
			Keywords:          []string{"do not resuscitate", "dnr"},
			IsStatusBadge:     true,
			BadgeColor:        "#7c3aed",
			BadgeIcon:         "heart-off",
		},
		{
			Type:              "dni",
			DisplayName:       "DNI",
			Category:          CategoryCritical,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 29},
			Keywords:          []string{"do not intubate", "dni"},
			IsStatusBadge:     true,
			BadgeColor:        "#7c3aed",
			BadgeIcon:         "lungs-off",
		},
		{
			Type:              "comfort_care",
			DisplayName:       "Comfort Measures Only",
			Category:          CategoryCritical,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 28},
			Keywords:          []string{"comfort measures only", "comfort care", "cmo", "hospice care"},
			IsStatusBadge:     true,
			BadgeColor:        "#8b5cf6",
			BadgeIcon:         "heart-handshake",
		},
		{
			Type:              "full_code",
			DisplayName:       "Full Code",
			Category:          CategoryInformational,
			DefaultBodyRegion: "chest",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 27},
			Keywords:          []string{"full code"},
			IsStatusBadge:     true,
			BadgeColor:        "#22c55e",
			BadgeIcon:         "heart-pulse",
		},
	}},

	{Family: FamilyAlerts, Types: []MarkerTypeDefinition{
		{
			Type:              "allergy_alert",
			DisplayName:       "Allergy Alert",
			Category:          CategoryCritical,
			DefaultBodyRegion: "torso",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 40},
			Keywords:          []string{"allergy alert", "allergic to", "allergies", "allergy"},
			IsStatusBadge:     true,
			BadgeColor:        "#dc2626",
			BadgeIcon:         "alert-triangle",
		},
		{
			Type:              "latex_allergy",
			DisplayName:       "Latex Allergy",
			Category:          CategoryCritical,
			DefaultBodyRegion: "torso",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 39},
			Keywords:          []string{"latex allergy", "allergic to latex", "latex free"},
			IsStatusBadge:     true,
			BadgeColor:        "#dc2626",
			BadgeIcon:         "glove",
		},
		{
			Type:              "no_blood_products",
			DisplayName:       "No Blood Products",
			Category:          CategoryCritical,
			DefaultBodyRegion: "torso",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 50, Y: 38},
			Keywords:          []string{"no blood products", "refuses blood", "jehovah's witness"},
			IsStatusBadge:     true,
			BadgeColor:        "#dc2626",
			BadgeIcon:         "ban",
		},
		{
			Type:              "limb_alert",
			DisplayName:       "Limb Alert",
			Category:          CategoryModerate,
			DefaultBodyRegion: "upper_arm",
			DefaultBodyView:   ViewFront,
			DefaultPosition:   Position{X: 20, Y: 40},
			Laterality:        lat(80, 40, 20, 40),
			Keywords:          []string{"limb alert", "restricted extremity", "no blood pressure or needlesticks", "no bp or sticks"},
		},
	}},
}
