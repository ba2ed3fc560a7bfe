package dashboards

// Network builds the network-level overview dashboard.
func Network(networkIDs []string) Document {
	return newDocument("nms_network", "Networks", networkIDs, []Panel{
		panel("Disk Percent",
			Target{Expr: `sum(disk_percent{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
		panel("Number of Connected eNBs",
			Target{Expr: `sum(enb_connected{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
		panel("Number of Connected UEs",
			Target{Expr: `sum(ue_connected{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
		panel("Number of Registered UEs",
			Target{Expr: `sum(ue_registered{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
		panel("S1 Setup",
			Target{Expr: `sum(s1_setup{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}} Total"},
			Target{Expr: `sum(s1_setup{networkID=~"$networkID",result="success"}) by (networkID)`, LegendFormat: "{{networkID}} Success"}),
		panel("Attach/Reg Attempts",
			Target{Expr: `sum(ue_attach{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}} Total"},
			Target{Expr: `sum(ue_attach{networkID=~"$networkID",result="attach_proc_successful"}) by (networkID)`, LegendFormat: "{{networkID}} Success"}),
		panel("Upload Throughput",
			Target{Expr: `sum(gtp_port_user_plane_ul_bytes{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
		panel("Download Throughput",
			Target{Expr: `sum(gtp_port_user_plane_dl_bytes{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
	})
}

// Gateway builds the per-gateway health dashboard.
func Gateway(networkIDs []string) Document {
	return newDocument("nms_gateway", "Gateways", networkIDs, []Panel{
		panel("E-Node B Status",
			Target{Expr: `enodeb_rf_tx_enabled{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}}"}),
		panel("Connected Subscribers",
			Target{Expr: `ue_connected{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}}"}),
		panel("Download Throughput",
			Target{Expr: `pdcp_user_plane_bytes_dl{networkID=~"$networkID"}/1000`, LegendFormat: "{{gatewayID}}"}),
		panel("Upload Throughput",
			Target{Expr: `pdcp_user_plane_bytes_ul{networkID=~"$networkID"}/1000`, LegendFormat: "{{gatewayID}}"}),
		panel("Latency",
			Target{Expr: `magmad_ping_rtt_ms{networkID=~"$networkID",metric="rtt_ms"}`, LegendFormat: "{{gatewayID}}"}),
		panel("Gateway CPU (%)",
			Target{Expr: `cpu_percent{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}}"}),
		panel("Temperature (C)",
			Target{Expr: `temperature{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}} - {{sensor}}"}),
		panel("Disk (%)",
			Target{Expr: `disk_percent{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}}"}),
		panel("s6a Auth Failure",
			Target{Expr: `s6a_auth_failure{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}}"}),
	})
}

// Internal builds the gateway-internals dashboard.
func Internal(networkIDs []string) Document {
	return newDocument("nms_internal", "Internal", networkIDs, []Panel{
		panel("Physical Memory Utilization Percent",
			Target{Expr: `mem_free{networkID=~"$networkID"}/mem_total{networkID=~"$networkID"} * 100`, LegendFormat: "{{gatewayID}}"}),
		panel("Temperature (C)",
			Target{Expr: `temperature{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}} - {{sensor}}"}),
		panel("Virtual Memory Percent",
			Target{Expr: `virtual_memory_percent{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}}"}),
		panel("Backhaul Latency",
			Target{Expr: `magmad_ping_rtt_ms{networkID=~"$networkID",service="magmad",metric="rtt_ms"}`, LegendFormat: "{{gatewayID}}"}),
		panel("System Uptime",
			Target{Expr: `process_uptime_seconds{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}} - {{service}}"}),
		panel("Number of Service Restarts",
			Target{Expr: `unexpected_service_restarts{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}} - {{service_name}}"}),
	})
}

// Subscriber builds the per-subscriber usage dashboard.
func Subscriber(networkIDs []string) Document {
	return newDocument("nms_subscriber", "Subscribers", networkIDs, []Panel{
		panel("UE Data Usage In",
			Target{Expr: `sum(ue_reported_usage{networkID=~"$networkID",direction="down"}) by (IMSI)`, LegendFormat: "{{IMSI}}"}),
		panel("UE Data Usage Out",
			Target{Expr: `sum(ue_reported_usage{networkID=~"$networkID",direction="up"}) by (IMSI)`, LegendFormat: "{{IMSI}}"}),
		panel("Throughput In",
			Target{Expr: `avg(rate(ue_reported_usage{networkID=~"$networkID",direction="down"}[5m])) by (IMSI)`, LegendFormat: "{{IMSI}}"}),
		panel("Throughput Out",
			Target{Expr: `avg(rate(ue_reported_usage{networkID=~"$networkID",direction="up"}[5m])) by (IMSI)`, LegendFormat: "{{IMSI}}"}),
	})
}

// XWFM builds the carrier-wifi dashboard for XWFM deployments.
func XWFM(networkIDs []string) Document {
	return newDocument("nms_xwfm", "XWF-M Dashboard", networkIDs, []Panel{
		panel("Authorization",
			Target{Expr: `sum(eap_auth{networkID=~"$networkID"}) by (code)`, LegendFormat: "{{code}}"}),
		panel("Active Sessions",
			Target{Expr: `sum(active_sessions{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
		panel("Traffic In",
			Target{Expr: `sum(octets_in{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
		panel("Traffic Out",
			Target{Expr: `sum(octets_out{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
		panel("Session Stop",
			Target{Expr: `sum(session_stop{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
	})
}

// Analytics builds the network analytics dashboard added for CWF deployments.
func Analytics(networkIDs []string) Document {
	return newDocument("nms_analytics", "Analytics", networkIDs, []Panel{
		panel("Access Point Count",
			Target{Expr: `ap_count{networkID=~"$networkID"}`, LegendFormat: "{{networkID}}"}),
		panel("Daily Active Users",
			Target{Expr: `active_users_over_time{networkID=~"$networkID",days="1"}`, LegendFormat: "{{networkID}}"}),
		panel("Monthly Active Users",
			Target{Expr: `active_users_over_time{networkID=~"$networkID",days="30"}`, LegendFormat: "{{networkID}}"}),
	})
}

// CWFNetwork builds the carrier-wifi network overview dashboard.
func CWFNetwork(networkIDs []string) Document {
	return newDocument("cwf_network", "CWF - Networks", networkIDs, []Panel{
		panel("Authorization",
			Target{Expr: `sum(eap_auth{networkID=~"$networkID"}) by (code)`, LegendFormat: "{{code}}"}),
		panel("Active Sessions",
			Target{Expr: `sum(active_sessions{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
		panel("Unique Users",
			Target{Expr: `sum(unique_users{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
		panel("Session Terminate",
			Target{Expr: `sum(session_terminate{networkID=~"$networkID"}) by (networkID)`, LegendFormat: "{{networkID}}"}),
	})
}

// CWFGateway builds the carrier-wifi gateway dashboard.
func CWFGateway(networkIDs []string) Document {
	return newDocument("cwf_gateway", "CWF - Gateways", networkIDs, []Panel{
		panel("Accounting Stops",
			Target{Expr: `sum(accounting_stop{networkID=~"$networkID"}) by (gatewayID)`, LegendFormat: "{{gatewayID}}"}),
		panel("Session Creates",
			Target{Expr: `sum(create_session{networkID=~"$networkID"}) by (gatewayID)`, LegendFormat: "{{gatewayID}}"}),
		panel("Gateway CPU (%)",
			Target{Expr: `cpu_percent{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}}"}),
		panel("Gateway Memory (%)",
			Target{Expr: `virtual_memory_percent{networkID=~"$networkID"}`, LegendFormat: "{{gatewayID}}"}),
	})
}

// CWFSubscriber builds the carrier-wifi subscriber dashboard.
func CWFSubscriber(networkIDs []string) Document {
	return newDocument("cwf_subscriber", "CWF - Subscribers", networkIDs, []Panel{
		panel("Traffic In",
			Target{Expr: `sum(octets_in{networkID=~"$networkID"}) by (imsi)`, LegendFormat: "{{imsi}}"}),
		panel("Traffic Out",
			Target{Expr: `sum(octets_out{networkID=~"$networkID"}) by (imsi)`, LegendFormat: "{{imsi}}"}),
		panel("Throughput In",
			Target{Expr: `avg(rate(octets_in{networkID=~"$networkID"}[5m])) by (imsi)`, LegendFormat: "{{imsi}}"}),
		panel("Throughput Out",
			Target{Expr: `avg(rate(octets_out{networkID=~"$networkID"}[5m])) by (imsi)`, LegendFormat: "{{imsi}}"}),
		panel("Active Sessions",
			Target{Expr: `active_sessions{networkID=~"$networkID"}`, LegendFormat: "{{imsi}}"}),
	})
}

// CWFAccessPoint builds the carrier-wifi access point dashboard.
func CWFAccessPoint(networkIDs []string) Document {
	return newDocument("cwf_access_point", "CWF - Access Points", networkIDs, []Panel{
		panel("Authorization",
			Target{Expr: `sum(eap_auth{networkID=~"$networkID"}) by (apn)`, LegendFormat: "{{apn}}"}),
		panel("Active Sessions",
			Target{Expr: `sum(active_sessions{networkID=~"$networkID"}) by (apn)`, LegendFormat: "{{apn}}"}),
		panel("Traffic In",
			Target{Expr: `sum(octets_in{networkID=~"$networkID"}) by (apn)`, LegendFormat: "{{apn}}"}),
		panel("Traffic Out",
			Target{Expr: `sum(octets_out{networkID=~"$networkID"}) by (apn)`, LegendFormat: "{{apn}}"}),
	})
}
