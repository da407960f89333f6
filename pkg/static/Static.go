package static

// Directory Constants
const (
	ROOTDIR     = ".kre8"
	CONFIGDIR   = "config"
	MANIFESTDIR = "manifests"
	PRIVATEDIR  = "AWS_Private"
	CONFIGFILE  = "config.yaml"
	ENVFILE     = ".env"
	LOCKFILE    = ".lock"
	CREDENTIALS = "awsCredentials.json"
	MASTER_FILE = "_MASTER_FILE.json"
)

// Default Log Level
const DEFAULT_LOG_LEVEL = "info"

const ENV_PREFIX = "KRE8"

// Defaults for the backend surface
const (
	DEFAULT_LISTEN    = "127.0.0.1:5180"
	DEFAULT_BACKEND   = "ws://127.0.0.1:5180/events"
	DEFAULT_NAMESPACE = "default"
	DEFAULT_KUBECTL   = "kubectl apply -f -"
)

// Kind Constants
const (
	KIND_POD        = "pod"
	KIND_DEPLOYMENT = "deployment"
	KIND_SERVICE    = "service"
)

// Outbound events, form controller to backend
const (
	CREATE_POD                = "CREATE_POD"
	CREATE_DEPLOYMENT         = "CREATE_DEPLOYMENT"
	CREATE_SERVICE            = "CREATE_SERVICE"
	START_LOADING_ICON        = "START_LOADING_ICON"
	SHOW_KUBE_DOCS_POD        = "SHOW_KUBE_DOCS_POD"
	SHOW_KUBE_DOCS_DEPLOYMENT = "SHOW_KUBE_DOCS_DEPLOYMENT"
	SHOW_KUBE_DOCS_SERVICE    = "SHOW_KUBE_DOCS_SERVICE"
	LOADING_OPEN              = "open"
	LOADING_CLOSE             = "close"
)

// Inbound events, backend to form controller
const (
	HANDLE_NEW_POD        = "HANDLE_NEW_POD"
	HANDLE_NEW_DEPLOYMENT = "HANDLE_NEW_DEPLOYMENT"
	HANDLE_NEW_SERVICE    = "HANDLE_NEW_SERVICE"
)

// Documentation pages opened by SHOW_KUBE_DOCS_*
const (
	DOCS_POD        = "https://kubernetes.io/docs/concepts/workloads/pods/"
	DOCS_DEPLOYMENT = "https://kubernetes.io/docs/concepts/workloads/controllers/deployment/"
	DOCS_SERVICE    = "https://kubernetes.io/docs/concepts/services-networking/service/"
)

// Store names used for metrics and logging
const (
	STORE_MASTER      = "master"
	STORE_CREDENTIALS = "credentials"
)

// Response Constants
const (
	RESPONSE_CREATED  = "resource is created"
	RESPONSE_EXISTS   = "resource already recorded in the master file"
	RESPONSE_FAILED   = "resource provisioning failed"
	RESPONSE_DRY_RUN  = "resource rendered in dry run mode"
	RESPONSE_INVALID  = "resource payload is invalid"
	RESPONSE_TIMEOUT  = "no completion event received before timeout"
	RESPONSE_HEALTHY  = "backend is healthy"
	RESPONSE_UPGRADED = "event link established"
)
