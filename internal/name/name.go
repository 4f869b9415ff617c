package name

// APP_NAME name used for config directories, log files, and version output
const APP_NAME = "modscout"

// VERSION current release version
const VERSION = "v0.3.1"
