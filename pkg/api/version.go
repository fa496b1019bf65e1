package api

const ApiVersion_1_0 = "1.0"

// ClientVersion is the version of this client library, sent in the default
// User-Agent.
const ClientVersion = "1.0.0"

type VersionRsp struct {
	ClientVersion string `json:"client_version"`
	ApiVersion    string `json:"api_version"`
}

func Version() VersionRsp {
	return VersionRsp{
		ClientVersion: ClientVersion,
		ApiVersion:    ApiVersion_1_0,
	}
}
