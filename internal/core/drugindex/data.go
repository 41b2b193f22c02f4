package drugindex

// drugAliases maps each canonical drug name to every spelling that should
// resolve to it: the canonical name itself, brand names, and OCR
// misspellings observed in scanned prescriptions.
var drugAliases = map[string][]string{
	// Analgesics / NSAIDs
	"paracetamol": {"paracetamol", "paracetamoi", "parcetamol", "paracetamo"},
	"acetaminophen": {"acetaminophen", "tylenol"},
	"ibuprofen": {"ibuprofen", "lbuprofen", "ibupr0fen", "brufen", "advil"},
	"aspirin": {"aspirin", "asprin", "ecosprin", "disprin"},
	"diclofenac": {"diclofenac", "diclofenag", "voltaren", "voveran"},
	"naproxen": {"naproxen", "naprosyn"},
	"tramadol": {"tramadol", "tramodol", "tramal", "ultram"},
	"morphine": {"morphine", "morph"},
	"codeine": {"codeine", "codine"},
	"indomethacin": {"indomethacin", "indocin"},
	"meloxicam": {"meloxicam", "mobicox"},

	// Antibiotics
	"amoxicillin": {"amoxicillin", "amoxycillin", "amoxicllin", "amox", "mox"},
	"amoxicillin-clavulanate": {"amoxiclav", "augmentin", "clavamox"},
	"azithromycin": {"azithromycin", "azithromydn", "azee", "zithromax", "azithro"},
	"ciprofloxacin": {"ciprofloxacin", "cipro", "ciplox"},
	"doxycycline": {"doxycycline", "doxycycine", "doxycyclin"},
	"cephalexin": {"cephalexin", "cefalexin", "keflex"},
	"cefuroxime": {"cefuroxime", "zinnat"},
	"metronidazole": {"metronidazole", "flagyl", "metrogyl"},
	"clindamycin": {"clindamycin", "cleocin"},
	"erythromycin": {"erythromycin", "erythrocin"},
	"trimethoprim": {"trimethoprim", "tmp"},
	"nitrofurantoin": {"nitrofurantoin", "macrobid"},
	"levofloxacin": {"levofloxacin", "levaquin"},
	"moxifloxacin": {"moxifloxacin", "avelox"},
	"penicillin": {"penicillin"},

	// Antifungals
	"fluconazole": {"fluconazole", "diflucan", "flucoz"},
	"itraconazole": {"itraconazole", "sporanox"},
	"ketoconazole": {"ketoconazole", "nizoral"},

	// Antihistamines
	"cetirizine": {"cetirizine", "cetrizine", "cetzine", "zyrtec"},
	"loratadine": {"loratadine", "claritin"},
	"fexofenadine": {"fexofenadine", "allegra"},
	"chlorpheniramine": {"chlorpheniramine", "chlorphenamine", "cpm"},
	"promethazine": {"promethazine", "phenergan"},
	"hydroxyzine": {"hydroxyzine", "atarax"},

	// GI / Antacids
	"omeprazole": {"omeprazole", "prilosec", "omez"},
	"pantoprazole": {"pantoprazole", "protonix", "pan"},
	"ranitidine": {"ranitidine", "zantac"},
	"cimetidine": {"cimetidine", "cinatidise", "cimatidine", "cimetidise", "tagamet"},
	"domperidone": {"domperidone", "motilium"},
	"metoclopramide": {"metoclopramide", "maxolon", "perinorm"},
	"ondansetron": {"ondansetron", "zofran"},
	"loperamide": {"loperamide", "imodium"},
	"lactulose": {"lactulose"},
	"esomeprazole": {"esomeprazole", "nexium"},

	// Cardiovascular
	"amlodipine": {"amlodipine", "norvasc", "amlong"},
	"atenolol": {"atenolol", "tenormin"},
	"metoprolol": {"metoprolol", "lopressor", "betaloc"},
	"propranolol": {"propranolol", "inderal"},
	"oxprenolol": {"oxprenolol", "oxpratal", "oxprenol", "trasicor"},
	"bisoprolol": {"bisoprolol", "cardicor"},
	"lisinopril": {"lisinopril", "zestril"},
	"enalapril": {"enalapril", "vasotec"},
	"ramipril": {"ramipril", "tritace", "altace"},
	"losartan": {"losartan", "cozaar"},
	"telmisartan": {"telmisartan", "micardis"},
	"valsartan": {"valsartan", "diovan"},
	"irbesartan": {"irbesartan", "avapro"},
	"atorvastatin": {"atorvastatin", "lipitor", "atorva"},
	"rosuvastatin": {"rosuvastatin", "crestor"},
	"simvastatin": {"simvastatin", "zocor"},
	"lovastatin": {"lovastatin"},
	"pravastatin": {"pravastatin"},
	"warfarin": {"warfarin", "coumadin"},
	"clopidogrel": {"clopidogrel", "plavix"},
	"digoxin": {"digoxin", "lanoxin"},
	"furosemide": {"furosemide", "lasix"},
	"spironolactone": {"spironolactone", "aldactone"},
	"hydrochlorothiazide": {"hydrochlorothiazide", "hctz"},
	"nitroglycerine": {"nitroglycerine", "nitroglycerin", "nitro"},
	"isosorbide": {"isosorbide", "imdur"},
	"nicorandil": {"nicorandil", "ikorel"},

	// Diabetes
	"metformin": {"metformin", "glucophage", "glycomet"},
	"glibenclamide": {"glibenclamide", "daonil"},
	"glimepiride": {"glimepiride", "amaryl"},
	"sitagliptin": {"sitagliptin", "januvia"},
	"insulin": {"insulin", "actrapid", "mixtard", "lantus", "glargine", "regular"},
	"empagliflozin": {"empagliflozin", "jardiance"},
	"dapagliflozin": {"dapagliflozin", "forxiga"},
	"linagliptin": {"linagliptin", "tradjenta"},
	"saxagliptin": {"saxagliptin", "onglyza"},
	"vildagliptin": {"vildagliptin", "galvus"},

	// Thyroid
	"levothyroxine": {"levothyroxine", "thyroxine", "eltroxin", "thyronorm"},
	"liothyronine": {"liothyronine", "cytomel"},

	// Respiratory
	"salbutamol": {"salbutamol", "albuterol", "ventolin"},
	"fluticasone": {"fluticasone", "flixotide"},
	"salmeterol": {"salmeterol", "serevent"},
	"montelukast": {"montelukast", "singulair"},
	"theophylline": {"theophylline"},
	"ipratropium": {"ipratropium", "atrovent"},
	"budesonide": {"budesonide", "pulmicort"},
	"beclomethasone": {"beclomethasone"},

	// CNS / Neurological
	"amitriptyline": {"amitriptyline", "elavil"},
	"sertraline": {"sertraline", "zoloft"},
	"fluoxetine": {"fluoxetine", "prozac"},
	"escitalopram": {"escitalopram", "lexapro"},
	"paroxetine": {"paroxetine", "paxil"},
	"venlafaxine": {"venlafaxine", "effexor"},
	"alprazolam": {"alprazolam", "xanax"},
	"diazepam": {"diazepam", "valium"},
	"lorazepam": {"lorazepam", "ativan"},
	"zolpidem": {"zolpidem", "ambien"},
	"haloperidol": {"haloperidol", "haldol"},
	"carbamazepine": {"carbamazepine", "tegretol"},
	"phenytoin": {"phenytoin", "dilantin"},
	"gabapentin": {"gabapentin", "neurontin"},
	"pregabalin": {"pregabalin", "lyrica"},
	"levodopa": {"levodopa", "sinemet"},
	"donepezil": {"donepezil", "aricept"},
	"memantine": {"memantine", "namenda"},

	// Steroids
	"prednisolone": {"prednisolone", "prednis0lone"},
	"prednisone": {"prednisone"},
	"dexamethasone": {"dexamethasone", "decadron"},
	"hydrocortisone": {"hydrocortisone"},
	"methylprednisolone": {"methylprednisolone", "medrol"},
	"betamethasone": {"betamethasone"},
	"triamcinolone": {"triamcinolone"},

	// Vitamins / Supplements
	"vitamin d": {"vitamin d", "vitamin d3", "cholecalciferol"},
	"vitamin b12": {"vitamin b12", "cyanocobalamin", "methylcobalamin"},
	"folic acid": {"folic acid", "folate"},
	"calcium": {"calcium carbonate", "calcium"},
	"iron": {"ferrous sulphate", "ferrous sulfate", "iron"},
	"magnesium": {"magnesium"},

	// Antivirals
	"acyclovir": {"acyclovir", "aciclovir", "zovirax"},
	"oseltamivir": {"oseltamivir", "tamiflu"},
	"valacyclovir": {"valacyclovir", "valtrex"},

	// Other common
	"betahistine": {"betahistine", "batalan", "serc", "vertin"},
	"baclofen": {"baclofen", "lioresal"},
	"colchicine": {"colchicine"},
	"allopurinol": {"allopurinol", "zyloric"},
	"febuxostat": {"febuxostat", "uloric"},
}
