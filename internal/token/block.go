package token

// Block is a value of the closed enumeration identifying the canonical
// group a variable belongs to. The declaration order here roughly
// follows the canonical order, but rules.BlockOrder is the ordered list
// the reorder pass uses; several constants (BlockDistversion,
// BlockLangDepends, BlockFlavorHelper and others) do not appear in it.
type Block int

const (
	BlockUnknown Block = iota

	BlockPortname
	BlockDistversion
	BlockPortrevision
	BlockPortepoch
	BlockCategories
	BlockMasterSites
	BlockPkgnamePrefixSuffix
	BlockDistfiles
	BlockExtract
	BlockPatchfiles
	BlockMaintainer
	BlockLicense
	BlockLicensePermissive
	BlockBroken
	BlockDeprecated
	BlockRestricted
	BlockConflicts
	BlockArchs

	BlockBuildDepends
	BlockLibDepends
	BlockRunDepends
	BlockTestDepends
	BlockLangDepends

	BlockUses
	BlockUseGnome
	BlockUseQt
	BlockShebangFix

	BlockFlavors
	BlockFlavorHelper

	BlockGnuConfigure
	BlockConfigureArgs
	BlockConfigureEnv

	BlockCmake
	BlockCmakeArgs

	BlockMeson
	BlockMesonArgs

	BlockMakeEnv
	BlockMakeArgs
	BlockCflags
	BlockCxxflags
	BlockLdflags
	BlockRustflags

	BlockUsePythonFlags

	BlockOptionsDefine
	BlockOptionsDefault
	BlockOptionsGroup
	BlockOptionsSingle
	BlockOptionsMulti
	BlockOptionsRadio
	BlockOptionsSub
	BlockOptionsDefinitions
	BlockOptionsHelpers

	BlockPlist
	BlockPlistFiles
	BlockPlistDirs
	BlockPlistSub
	BlockSubFiles
	BlockSubList

	BlockUsers
	BlockGroups

	BlockPostPatch
	BlockPreConfigure
	BlockPostConfigure
	BlockPreBuild
	BlockPostBuild
	BlockPreInstall
	BlockPostInstall
	BlockDoInstall

	BlockIncludeBsdPortMk
)

// blockNames mirrors the constant order for String() and templated-lookup
// diagnostics.
var blockNames = map[Block]string{
	BlockUnknown:             "UNKNOWN",
	BlockPortname:            "PORTNAME",
	BlockDistversion:         "DISTVERSION",
	BlockPortrevision:        "PORTREVISION",
	BlockPortepoch:           "PORTEPOCH",
	BlockCategories:          "CATEGORIES",
	BlockMasterSites:         "MASTER_SITES",
	BlockPkgnamePrefixSuffix: "PKGNAMEPREFIX",
	BlockDistfiles:           "DISTFILES",
	BlockExtract:             "EXTRACT_SUFX",
	BlockPatchfiles:          "PATCHFILES",
	BlockMaintainer:          "MAINTAINER",
	BlockLicense:             "LICENSE",
	BlockLicensePermissive:   "LICENSE_PERMS",
	BlockBroken:              "BROKEN",
	BlockDeprecated:          "DEPRECATED",
	BlockRestricted:          "RESTRICTED",
	BlockConflicts:           "CONFLICTS",
	BlockArchs:               "ONLY_FOR_ARCHS",
	BlockBuildDepends:        "BUILD_DEPENDS",
	BlockLibDepends:          "LIB_DEPENDS",
	BlockRunDepends:          "RUN_DEPENDS",
	BlockTestDepends:         "TEST_DEPENDS",
	BlockLangDepends:         "LANG_DEPENDS",
	BlockUses:                "USES",
	BlockUseGnome:            "USE_GNOME",
	BlockUseQt:               "USE_QT",
	BlockShebangFix:          "SHEBANG_FIX",
	BlockFlavors:             "FLAVORS",
	BlockFlavorHelper:        "FLAVOR_HELPER",
	BlockGnuConfigure:        "GNU_CONFIGURE",
	BlockConfigureArgs:       "CONFIGURE_ARGS",
	BlockConfigureEnv:        "CONFIGURE_ENV",
	BlockCmake:               "CMAKE",
	BlockCmakeArgs:           "CMAKE_ARGS",
	BlockMeson:               "MESON",
	BlockMesonArgs:           "MESON_ARGS",
	BlockMakeEnv:             "MAKE_ENV",
	BlockMakeArgs:            "MAKE_ARGS",
	BlockCflags:              "CFLAGS",
	BlockCxxflags:            "CXXFLAGS",
	BlockLdflags:             "LDFLAGS",
	BlockRustflags:           "RUSTFLAGS",
	BlockUsePythonFlags:      "USE_PYTHON",
	BlockOptionsDefine:       "OPTIONS_DEFINE",
	BlockOptionsDefault:      "OPTIONS_DEFAULT",
	BlockOptionsGroup:        "OPTIONS_GROUP",
	BlockOptionsSingle:       "OPTIONS_SINGLE",
	BlockOptionsMulti:        "OPTIONS_MULTI",
	BlockOptionsRadio:        "OPTIONS_RADIO",
	BlockOptionsSub:          "OPTIONS_SUB",
	BlockOptionsDefinitions:  "OPTIONS_DEFINITIONS",
	BlockOptionsHelpers:      "OPTIONS_HELPERS",
	BlockPlist:               "PLIST",
	BlockPlistFiles:          "PLIST_FILES",
	BlockPlistDirs:           "PLIST_DIRS",
	BlockPlistSub:            "PLIST_SUB",
	BlockSubFiles:            "SUB_FILES",
	BlockSubList:             "SUB_LIST",
	BlockUsers:               "USERS",
	BlockGroups:              "GROUPS",
	BlockPostPatch:           "post-patch",
	BlockPreConfigure:        "pre-configure",
	BlockPostConfigure:       "post-configure",
	BlockPreBuild:            "pre-build",
	BlockPostBuild:           "post-build",
	BlockPreInstall:          "pre-install",
	BlockPostInstall:         "post-install",
	BlockDoInstall:           "do-install",
	BlockIncludeBsdPortMk:    "BSD_PORT_MK",
}

// String names a block for diagnostics (lint-order's UNKNOWN group header,
// debug dumps).
func (b Block) String() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return "UNKNOWN"
}
