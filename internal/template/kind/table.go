package kind

// ID enumerates the known kind identifiers.
type ID int

const (
	Unknown ID = iota

	// Vendor kind identifiers.
	ProjectTemplateUnit
	IDEKitProjectTemplate
	FoundationTextSubstitutionFile
	IDEKitTextSubstitutionFile
	PlaygroundFile
	PackageTemplate
	PackageFile

	// Base templates.
	UnitBase
	BundleBase
	ApplicationBase
	CocoaApplicationBase
	CocoaTouchApplicationBase
	FrameworkBase
	StaticLibraryBase
	UnitTestBundleBase
	UITestBundleBase
	AppExtensionBase
	SwiftUIApplicationBase
	FileBase
	SourceFileBase
	HeaderFileBase
	PackageBase

	// Utility templates.
	LanguageChoice
	PlatformChoice
	InterfaceChoice
	LifecycleChoice
	StorageChoice
	TestingSystemChoice
	ClassChoice

	idCount
)

type entry struct {
	raw      string
	display  string
	category Category
	base     bool
	utility  bool
}

// table is indexed by ID. Entries must stay in ID order.
var table = [idCount]entry{
	Unknown: {display: "Unknown"},

	ProjectTemplateUnit:            {raw: "Xcode.Xcode3.ProjectTemplateUnitKind", display: "Project Template", category: CategoryProject},
	IDEKitProjectTemplate:          {raw: "Xcode.IDEKit.ProjectTemplateKind", display: "Project Template", category: CategoryProject},
	FoundationTextSubstitutionFile: {raw: "Xcode.IDEFoundation.TextSubstitutionFileTemplateKind", display: "File Template", category: CategoryFile},
	IDEKitTextSubstitutionFile:     {raw: "Xcode.IDEKit.TextSubstitutionFileTemplateKind", display: "File Template", category: CategoryFile},
	PlaygroundFile:                 {raw: "Xcode.IDEPlaygroundSupport.PlaygroundFileTemplateKind", display: "Playground", category: CategoryFile},
	PackageTemplate:                {raw: "Xcode.IDESwiftPackageSupport.PackageTemplateKind", display: "Swift Package", category: CategoryPackage},
	PackageFile:                    {raw: "Xcode.IDESwiftPackageSupport.PackageFileTemplateKind", display: "Package File", category: CategoryPackage},

	UnitBase:                  {raw: "com.apple.dt.unit.base", display: "Base", category: CategoryProject, base: true},
	BundleBase:                {raw: "com.apple.dt.unit.bundleBase", display: "Bundle Base", category: CategoryProject, base: true},
	ApplicationBase:           {raw: "com.apple.dt.unit.applicationBase", display: "Application Base", category: CategoryProject, base: true},
	CocoaApplicationBase:      {raw: "com.apple.dt.unit.cocoaApplicationBase", display: "Cocoa Application Base", category: CategoryProject, base: true},
	CocoaTouchApplicationBase: {raw: "com.apple.dt.unit.cocoaTouchApplicationBase", display: "Cocoa Touch Application Base", category: CategoryProject, base: true},
	FrameworkBase:             {raw: "com.apple.dt.unit.frameworkBase", display: "Framework Base", category: CategoryProject, base: true},
	StaticLibraryBase:         {raw: "com.apple.dt.unit.staticLibraryBase", display: "Static Library Base", category: CategoryProject, base: true},
	UnitTestBundleBase:        {raw: "com.apple.dt.unit.unitTestBundleBase", display: "Unit Test Bundle Base", category: CategoryProject, base: true},
	UITestBundleBase:          {raw: "com.apple.dt.unit.uiTestBundleBase", display: "UI Test Bundle Base", category: CategoryProject, base: true},
	AppExtensionBase:          {raw: "com.apple.dt.unit.appExtensionBase", display: "App Extension Base", category: CategoryProject, base: true},
	SwiftUIApplicationBase:    {raw: "com.apple.dt.unit.swiftUIApplicationBase", display: "SwiftUI Application Base", category: CategoryProject, base: true},
	FileBase:                  {raw: "com.apple.dt.document.base", display: "File Base", category: CategoryFile, base: true},
	SourceFileBase:            {raw: "com.apple.dt.document.sourcecode.base", display: "Source File Base", category: CategoryFile, base: true},
	HeaderFileBase:            {raw: "com.apple.dt.document.c-header.base", display: "Header File Base", category: CategoryFile, base: true},
	PackageBase:               {raw: "com.apple.dt.package.base", display: "Package Base", category: CategoryPackage, base: true},

	LanguageChoice:      {raw: "com.apple.dt.unit.languageChoice", display: "Language Choice", category: CategoryProject, utility: true},
	PlatformChoice:      {raw: "com.apple.dt.unit.platformChoice", display: "Platform Choice", category: CategoryProject, utility: true},
	InterfaceChoice:     {raw: "com.apple.dt.unit.interfaceChoice", display: "Interface Choice", category: CategoryProject, utility: true},
	LifecycleChoice:     {raw: "com.apple.dt.unit.lifecycleChoice", display: "Life Cycle Choice", category: CategoryProject, utility: true},
	StorageChoice:       {raw: "com.apple.dt.unit.storageChoice", display: "Storage Choice", category: CategoryProject, utility: true},
	TestingSystemChoice: {raw: "com.apple.dt.unit.testingSystemChoice", display: "Testing System Choice", category: CategoryProject, utility: true},
	ClassChoice:         {raw: "com.apple.dt.document.classChoice", display: "Class Choice", category: CategoryFile, utility: true},
}

var byRaw map[string]ID

func init() {
	byRaw = make(map[string]ID, len(table))
	for id := Unknown + 1; id < idCount; id++ {
		byRaw[table[id].raw] = id
	}
}
